package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/inkandimagination/artstore/internal/adapter/mailer"
	"github.com/inkandimagination/artstore/internal/adapter/razorpay"
	"github.com/inkandimagination/artstore/internal/adapter/shiprocket"
	"github.com/inkandimagination/artstore/internal/config"
	"github.com/inkandimagination/artstore/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewCatalogUseCase,
	NewContactUseCase,
	NewAuthUseCase,
	NewDashboardUseCase,
	newFulfillmentUseCase,
)

type fulfillmentParams struct {
	fx.In

	Orders   repository.OrderRepository
	Artworks repository.ArtworkRepository
	Gateway  razorpay.Client
	Shipper  shiprocket.Client
	Notifier mailer.Notifier
	Config   *config.Config
	Logger   *slog.Logger
}

func newFulfillmentUseCase(p fulfillmentParams) *FulfillmentUseCase {
	return NewFulfillmentUseCase(p.Orders, p.Artworks, p.Gateway, p.Shipper, p.Notifier, p.Config.Currency, p.Logger)
}
