package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storerating/internal/app"
	"github.com/polkiloo/storerating/internal/config"
	"github.com/polkiloo/storerating/internal/logger"
	"github.com/polkiloo/storerating/internal/metrics"
	"github.com/polkiloo/storerating/internal/pkg/auth"
	"github.com/polkiloo/storerating/internal/server/http/router"
	"github.com/polkiloo/storerating/internal/storage/postgres"
	"github.com/polkiloo/storerating/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		metrics.Module,
		usecase.Module,
		fx.Provide(func(c *metrics.Collector) usecase.RatingRecorder { return c }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
