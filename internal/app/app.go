package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/inkandimagination/artstore/internal/config"
	"github.com/inkandimagination/artstore/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewStoreFacade,
		newHTTPServer,
		newShipmentRetrier,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type workerParams struct {
	fx.In

	Facade *StoreFacade
	Config *config.Config
	Logger *slog.Logger
}

func newShipmentRetrier(p workerParams) *worker.ShipmentRetrier {
	return worker.NewShipmentRetrier(
		p.Facade,
		p.Config.ShipmentRetryInterval,
		p.Config.MaxShipmentBatch,
		p.Config.WorkerPoolSize,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.ShipmentRetrier
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting artstore", slog.String("addr", p.Server.Addr))
			p.Worker.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Worker.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("artstore stopped")
			return nil
		},
	})
}
