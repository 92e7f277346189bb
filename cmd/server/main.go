// Package main implements the entry point for the tasks API server, which
// serves the /tasks endpoint over a PostgreSQL task table.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
)

func main() {
	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		app.logger.Error("Application stopped with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging and opens the database
// pools. An unreachable database does not stop startup; requests are gated
// on connectivity instead.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"rate_limit_rps", cfg.Server.RateLimitRPS)
	slog.Debug("Database configuration",
		"url_present", cfg.Database.URL != "",
		"separate_read_pool", cfg.Database.ReadURL != "")

	connector, err := postgres.Open(ctx, cfg.Database, l)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return newApplication(cfg, l, connector), nil
}
