package store

import (
	"context"

	"github.com/optiq-app/optiq-api/internal/domain"
)

// ProfileStore defines the interface for profile persistence.
// Every operation is scoped to the owning user.
type ProfileStore interface {
	// Create saves a new profile and assigns its generated ID.
	// Returns ErrCpfCnpjExists if another profile holds the cpf_cnpj.
	Create(ctx context.Context, profile *domain.Profile) error

	// GetByUserID retrieves the single profile owned by the given user.
	// Returns ErrProfileNotFound if no profile exists.
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)

	// Update overwrites every mutable field of the profile owned by
	// userID. Returns ErrProfileNotFound when zero rows are affected,
	// which also covers a byte-identical no-op update.
	Update(ctx context.Context, userID int64, profile *domain.Profile) error

	// ExistsByCpfCnpj reports whether any profile holds the given
	// cpf_cnpj. Advisory pre-check only; the unique constraint is the
	// authoritative guard.
	ExistsByCpfCnpj(ctx context.Context, cpfCnpj string) (bool, error)

	// WithTx returns a ProfileStore bound to the given transaction.
	WithTx(tx DBTX) ProfileStore
}
