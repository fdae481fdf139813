// Package main implements the entry point for the Optiq API server,
// the backend for the Optiq optical-goods platform: user accounts,
// customer profiles and lens-prescription quotes.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/optiq-app/optiq-api/internal/config"
	"github.com/optiq-app/optiq-api/internal/platform/logger"
)

func main() {
	ctx := context.Background()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	db, err := openDatabase(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := runMigrations(db, appLogger); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	// A missing .env file is fine; the environment may already carry
	// everything.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"log_format", cfg.Server.LogFormat,
		"session_lifetime_hours", cfg.Auth.SessionLifetimeHours)

	return cfg, appLogger, nil
}
