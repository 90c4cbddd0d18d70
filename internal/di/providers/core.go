// Package providers contains dependency injection providers for the StreamLens server.
package providers

import (
	"time"

	"github.com/samber/do/v2"

	"github.com/streamlens/streamlens-server/internal/config"
	"github.com/streamlens/streamlens-server/internal/logger"
)

// shutdownTimeout is the maximum time to wait for graceful shutdown of the HTTP server.
const shutdownTimeout = 30 * time.Second

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Info("Starting StreamLens Server",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"catalog_path", cfg.Catalog.Path,
	)

	return log, nil
}
