package shiprocket

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/inkandimagination/artstore/internal/config"
)

// Module exposes logistics client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	client, err := NewHTTPClient(
		p.Config.ShiprocketBaseURL,
		p.Config.ShiprocketEmail,
		p.Config.ShiprocketPassword,
		p.Config.ShiprocketPickupLocation,
		p.Config.GatewayTimeout,
		p.Logger,
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}
