package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/tasks-api/internal/api"
	apiMiddleware "github.com/phrazzld/tasks-api/internal/api/middleware"
	"github.com/phrazzld/tasks-api/internal/api/shared"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.RateLimit(app.config.Server.RateLimitRPS, app.config.Server.RateLimitBurst))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.Render(w, r, shared.Failure(http.StatusNotFound, "Endpoint not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.Render(w, r, shared.Failure(http.StatusMethodNotAllowed, "Request method not allowed"))
	})

	taskHandler := api.NewTaskHandler(app.taskStore, app.logger)

	r.Group(func(r chi.Router) {
		r.Use(apiMiddleware.RequireDatabase(app.db))
		taskHandler.RegisterRoutes(r)
	})

	// Health check endpoint, answered without touching the database
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
