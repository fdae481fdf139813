package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/optiq-app/optiq-api/internal/config"
	"github.com/optiq-app/optiq-api/internal/platform/postgres"
	"github.com/optiq-app/optiq-api/internal/service/auth"
	"github.com/optiq-app/optiq-api/internal/store"
)

// application holds the shared application dependencies so wiring and
// cleanup live in one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore      store.UserStore
	profileStore   store.ProfileStore
	orcamentoStore store.OrcamentoStore
	transactor     store.Transactor

	// Service interfaces
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	sessionService   auth.SessionService
}

// newApplication creates a new application instance with all
// dependencies initialized. Configuration, logger and database must be
// established by the caller first.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.sessionService, err = auth.NewSessionService(cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session service: %w", err)
	}
	logger.Info("session service initialized",
		"session_lifetime_hours", cfg.Auth.SessionLifetimeHours)

	app.passwordHasher = auth.NewBcryptHasher(bcrypt.DefaultCost)
	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewUserStore(db, logger)
	app.profileStore = postgres.NewProfileStore(db, logger)
	app.orcamentoStore = postgres.NewOrcamentoStore(db, logger)
	app.transactor = store.NewSQLTransactor(db)

	logger.Info("application initialized successfully")
	return app, nil
}

// sessionLifetime returns the configured absolute session lifetime.
func (app *application) sessionLifetime() time.Duration {
	return time.Duration(app.config.Auth.SessionLifetimeHours) * time.Hour
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if closer, ok := app.sessionService.(interface{ Close() }); ok {
		closer.Close()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
