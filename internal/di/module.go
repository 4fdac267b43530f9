package di

import (
	"github.com/inkandimagination/artstore/internal/adapter/mailer"
	"github.com/inkandimagination/artstore/internal/adapter/razorpay"
	"github.com/inkandimagination/artstore/internal/adapter/shiprocket"
	"github.com/inkandimagination/artstore/internal/app"
	"github.com/inkandimagination/artstore/internal/config"
	"github.com/inkandimagination/artstore/internal/logger"
	"github.com/inkandimagination/artstore/internal/pkg/auth"
	"github.com/inkandimagination/artstore/internal/server/http/handlers"
	"github.com/inkandimagination/artstore/internal/server/http/router"
	"github.com/inkandimagination/artstore/internal/storage/postgres"
	"github.com/inkandimagination/artstore/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		razorpay.Module,
		shiprocket.Module,
		mailer.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) handlers.Pinger { return s }),
		fx.Provide(func(f *app.StoreFacade) handlers.StoreFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
