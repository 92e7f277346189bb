package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/phrazzld/tasks-api/internal/store"
)

// application holds the shared dependencies of the server and ensures
// proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db gates every tasks request on connectivity of both pools.
	db store.HealthChecker
	// closer releases the database pools on shutdown.
	closer io.Closer

	taskStore store.TaskStore
}

// newApplication wires the task store onto the connector's pools.
func newApplication(cfg *config.Config, logger *slog.Logger, connector *postgres.Connector) *application {
	app := &application{
		config:    cfg,
		logger:    logger,
		db:        connector,
		closer:    connector,
		taskStore: postgres.NewPostgresTaskStore(connector.Read(), connector.Write(), logger),
	}

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the HTTP server and blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.closer != nil {
		if err := app.closer.Close(); err != nil {
			app.logger.Error("Error closing database connections", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
