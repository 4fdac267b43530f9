package razorpay

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/inkandimagination/artstore/internal/config"
)

// Module exposes payment gateway client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	client, err := NewHTTPClient(
		p.Config.RazorpayBaseURL,
		p.Config.RazorpayKeyID,
		p.Config.RazorpayKeySecret,
		p.Config.GatewayTimeout,
		p.Logger,
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}
