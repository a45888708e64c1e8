package logger

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storerating/internal/config"
)

// Module wires slog logger for dependency injection.
var Module = fx.Provide(newLogger)

type loggerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
}

func newLogger(p loggerParams) *slog.Logger {
	logger, closer := New(Options{
		Level:     p.Config.LogLevel,
		File:      p.Config.LogFile,
		MaxSizeMB: p.Config.LogMaxSizeMB,
	})
	if closer != nil {
		p.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error { return closer.Close() },
		})
	}
	return logger
}
