// Package main implements the entry point for the task gateway server,
// which validates task submissions over HTTP and forwards them onto a
// durable message queue for a separate worker to consume.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/taskbridge/taskbridge/internal/config"
	"github.com/taskbridge/taskbridge/internal/platform/logger"
)

// main is the entry point for the task gateway server. It initializes
// configuration and logging, wires the application dependencies, and starts
// the HTTP server.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and builds the
// application with its dependencies injected.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"queue", cfg.Broker.Queue,
		"rate_limit_enabled", cfg.RateLimit.Enabled,
		"rate_limit_requests", cfg.RateLimit.Requests,
		"rate_limit_window_seconds", cfg.RateLimit.WindowSeconds)

	// The broker URL is only required at submission time, but a deployment
	// without it will fail every submission, so make that visible at boot.
	if cfg.Broker.URL == "" {
		slog.Warn("broker connection URL is not configured; task submissions will fail until it is set",
			"env_vars", "TASKBRIDGE_BROKER_URL or CLOUDAMQP_URL")
	} else {
		slog.Debug("Broker configuration", "url_present", true)
	}

	return newApplication(cfg, l), nil
}
