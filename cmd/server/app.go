package main

import (
	"log/slog"
	"time"

	apiMiddleware "github.com/taskbridge/taskbridge/internal/api/middleware"
	"github.com/taskbridge/taskbridge/internal/config"
	"github.com/taskbridge/taskbridge/internal/queue"
)

// application holds the long-lived dependencies shared by the HTTP handlers:
// configuration, the logger, the queue publisher, and the rate-limit store.
// Everything is constructed explicitly here and injected, so tests can swap
// in fakes.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	publisher queue.Publisher
	limiter   *apiMiddleware.RateLimiterStore
}

// newApplication wires the application dependencies from the loaded
// configuration.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	return &application{
		config:    cfg,
		logger:    logger,
		publisher: queue.NewAMQPPublisher(cfg.Broker.URL, cfg.Broker.Queue),
		limiter: apiMiddleware.NewRateLimiterStore(
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		),
	}
}
