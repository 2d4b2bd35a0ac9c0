// Package main implements the entry point for the inkpost API server,
// which generates blog posts from topic prompts via LLM backends and
// persists them for static rendering.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/inkpost/inkpost-api/internal/config"
	"github.com/inkpost/inkpost-api/internal/platform/logger"
)

// main is the entry point for the inkpost-api server.
// It initializes configuration, logging, the database connection, and
// application dependencies, then starts the HTTP server.
func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

// run loads configuration, wires dependencies, and runs the server until
// shutdown. Split from main so initialization failures propagate as
// errors.
func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"models", cfg.LLM.Models,
		"sanitize", cfg.Pipeline.Sanitize,
		"profanity_filter", cfg.Pipeline.ProfanityFilter)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
