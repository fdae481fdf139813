package store

import (
	"context"

	"github.com/optiq-app/optiq-api/internal/domain"
)

// OrcamentoStore defines the interface for orcamento persistence.
// Lookups, updates and deletes always filter by (id AND usuario_id) so
// that a user can never observe or touch another user's quotes.
type OrcamentoStore interface {
	// Create saves a new orcamento and assigns its generated ID.
	Create(ctx context.Context, orcamento *domain.Orcamento) error

	// ListByUserID retrieves all orcamentos owned by the user, in
	// storage order. Returns an empty slice when the user has none.
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Orcamento, error)

	// GetByID retrieves the orcamento with the given id owned by
	// userID. Returns ErrOrcamentoNotFound if no row matches, whether
	// the id does not exist or belongs to a different user.
	GetByID(ctx context.Context, userID, id int64) (*domain.Orcamento, error)

	// Update overwrites every field of the orcamento scoped to
	// (id, usuario_id). Returns ErrOrcamentoNotFound on zero affected
	// rows, including a byte-identical no-op update.
	Update(ctx context.Context, userID, id int64, orcamento *domain.Orcamento) error

	// Delete removes the orcamento scoped to (id, usuario_id).
	// Returns ErrOrcamentoNotFound on zero affected rows.
	Delete(ctx context.Context, userID, id int64) error
}
