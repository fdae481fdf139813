// Package postgres implements the store interfaces on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/optiq-app/optiq-api/internal/domain"
	"github.com/optiq-app/optiq-api/internal/platform/logger"
	"github.com/optiq-app/optiq-api/internal/store"
)

// UserStore implements the store.UserStore interface using a
// PostgreSQL database as the storage backend.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of the
// store.UserStore interface. It accepts a database connection or
// transaction that should be initialized and managed by the caller.
func NewUserStore(db store.DBTX, log *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &UserStore{
		db:     db,
		logger: log.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore.
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create.
// Returns store.ErrEmailExists when the unique constraint on email
// fires, whether or not the advisory pre-check caught it first.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO usuarios (email, senha, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		user.Email,
		user.HashedPassword,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("duplicate email on user insert")
			return MapUniqueViolation(err, store.ErrEmailExists)
		}
		log.Error("failed to create user", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("user created", slog.Int64("user_id", user.ID))
	return nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, senha, created_at, updated_at
		FROM usuarios
		WHERE email = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &user, nil
}

// ExistsByEmail implements store.UserStore.ExistsByEmail.
func (s *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE email = $1)`,
		email,
	).Scan(&exists)

	if err != nil {
		log.Error("failed to check email existence", slog.String("error", err.Error()))
		return false, MapError(err)
	}

	return exists, nil
}

// WithTx implements store.UserStore.WithTx.
func (s *UserStore) WithTx(tx store.DBTX) store.UserStore {
	return &UserStore{db: tx, logger: s.logger}
}
