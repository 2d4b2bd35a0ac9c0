package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/inkpost/inkpost-api/internal/config"
	"github.com/inkpost/inkpost-api/internal/generation"
	"github.com/inkpost/inkpost-api/internal/platform/gemini"
	"github.com/inkpost/inkpost-api/internal/platform/postgres"
	"github.com/inkpost/inkpost-api/internal/ratelimit"
	"github.com/inkpost/inkpost-api/internal/sanitize"
	"github.com/inkpost/inkpost-api/internal/service"
	"github.com/inkpost/inkpost-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	postStore store.PostStore

	// Pipeline collaborators
	generator   generation.Generator
	sanitizer   *sanitize.Sanitizer
	limiter     *ratelimit.SlidingWindow
	postService *service.PostService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.postStore = postgres.NewPostgresPostStore(db, logger)

	var err error
	app.generator, err = gemini.NewGenerator(
		ctx,
		logger.With("component", "llm_generator"),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully",
		"models", cfg.LLM.Models)

	app.sanitizer = sanitize.New(logger)

	app.limiter = ratelimit.NewSlidingWindow(
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		cfg.RateLimit.MaxRequests,
	)

	app.postService, err = service.NewPostService(
		app.generator,
		app.postStore,
		app.sanitizer,
		cfg.Pipeline,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
