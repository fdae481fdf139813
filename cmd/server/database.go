package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	// Registers the pgx driver with database/sql under the name "pgx".
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/optiq-app/optiq-api/internal/config"
)

const (
	// maxOpenConns caps the pool at the same size the platform has
	// always run with.
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute

	pingTimeout = 5 * time.Second
)

// openDatabase opens the PostgreSQL connection pool and verifies it
// with a ping. The server refuses to start without a reachable
// database.
func openDatabase(ctx context.Context, cfg *config.Config, log *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("failed to close database after ping failure", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established",
		"host", cfg.Database.Host,
		"database", cfg.Database.Name,
		"max_open_conns", maxOpenConns)

	return db, nil
}
