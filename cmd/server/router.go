package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taskbridge/taskbridge/internal/api"
	apiMiddleware "github.com/taskbridge/taskbridge/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Rate limiting is scoped to the submission endpoint only;
// the health check must stay reachable regardless of client history.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	taskHandler := api.NewTaskHandler(&app.config.Broker, app.publisher, app.logger)

	// Health check endpoint
	r.Get("/", taskHandler.HealthCheck)

	// Task submission, behind the per-client rate limit
	r.Group(func(r chi.Router) {
		if app.config.RateLimit.Enabled {
			r.Use(apiMiddleware.RateLimit(app.limiter, app.logger))
		}
		r.Post("/submit_task", taskHandler.SubmitTask)
	})

	return r
}
