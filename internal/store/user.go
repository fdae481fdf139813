// Package store provides abstractions and implementations for data persistence.
package store

import (
	"context"

	"github.com/optiq-app/optiq-api/internal/domain"
)

// UserStore defines the interface for user credential persistence.
type UserStore interface {
	// Create saves a new user and assigns its generated ID.
	// The user's HashedPassword must already be populated; plaintext
	// passwords are never stored.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by their email address. The lookup is
	// case-sensitive, matching how emails are stored.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ExistsByEmail reports whether a user with the given email exists.
	// This is the advisory pre-check during registration; the unique
	// constraint remains the authoritative guard.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// WithTx returns a UserStore bound to the given transaction so that
	// registration can create the user and profile atomically.
	WithTx(tx DBTX) UserStore
}
