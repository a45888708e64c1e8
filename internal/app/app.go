package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/storerating/internal/config"
	"github.com/polkiloo/storerating/internal/server/http/handlers"
	"github.com/polkiloo/storerating/internal/storage/postgres"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewStoreRatingFacade,
		func(f *StoreRatingFacade) handlers.StoreRatingFacade { return f },
		func(f *StoreRatingFacade) AdminSeeder { return f },
		func(s *postgres.Storage) HealthChecker { return s },
		newHTTPServer,
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

// AdminSeeder creates the bootstrap administrator.
type AdminSeeder interface {
	SeedAdmin(ctx context.Context, name, email, password string) (bool, error)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Seeder     AdminSeeder
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := seedAdmin(ctx, p.Seeder, p.Config.Admin, p.Logger); err != nil {
				return err
			}

			p.Logger.Info("starting storerating", slog.String("addr", p.Server.Addr))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("storerating stopped")
			return nil
		},
	})
}

func seedAdmin(ctx context.Context, seeder AdminSeeder, admin config.AdminSeed, logger *slog.Logger) error {
	if admin.Password == "" {
		logger.Debug("admin seeding skipped, no password configured")
		return nil
	}
	created, err := seeder.SeedAdmin(ctx, admin.Name, admin.Email, admin.Password)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if created {
		logger.Info("admin account created", slog.String("email", admin.Email))
	}
	return nil
}
