package mocks

import (
	"context"

	"github.com/optiq-app/optiq-api/internal/domain"
	"github.com/optiq-app/optiq-api/internal/store"
)

// MockOrcamentoStore implements store.OrcamentoStore for testing.
type MockOrcamentoStore struct {
	CreateFn       func(ctx context.Context, orcamento *domain.Orcamento) error
	ListByUserIDFn func(ctx context.Context, userID int64) ([]*domain.Orcamento, error)
	GetByIDFn      func(ctx context.Context, userID, id int64) (*domain.Orcamento, error)
	UpdateFn       func(ctx context.Context, userID, id int64, orcamento *domain.Orcamento) error
	DeleteFn       func(ctx context.Context, userID, id int64) error

	// Orcamentos is keyed by quote ID; ownership lives on the value.
	Orcamentos map[int64]*domain.Orcamento
	NextID     int64
	CreateErr  error
	ListErr    error
	GetErr     error
	UpdateErr  error
	DeleteErr  error
}

// NewMockOrcamentoStore creates a new mock store with initialized defaults.
func NewMockOrcamentoStore() *MockOrcamentoStore {
	return &MockOrcamentoStore{
		Orcamentos: make(map[int64]*domain.Orcamento),
		NextID:     1,
	}
}

// Create implements the OrcamentoStore interface.
func (m *MockOrcamentoStore) Create(ctx context.Context, orcamento *domain.Orcamento) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, orcamento)
	}

	if m.CreateErr != nil {
		return m.CreateErr
	}

	orcamento.ID = m.NextID
	m.NextID++
	m.Orcamentos[orcamento.ID] = orcamento
	return nil
}

// ListByUserID implements the OrcamentoStore interface.
func (m *MockOrcamentoStore) ListByUserID(ctx context.Context, userID int64) ([]*domain.Orcamento, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}

	if m.ListErr != nil {
		return nil, m.ListErr
	}

	result := []*domain.Orcamento{}
	for _, o := range m.Orcamentos {
		if o.UsuarioID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

// GetByID implements the OrcamentoStore interface.
func (m *MockOrcamentoStore) GetByID(ctx context.Context, userID, id int64) (*domain.Orcamento, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, userID, id)
	}

	if m.GetErr != nil {
		return nil, m.GetErr
	}

	o, exists := m.Orcamentos[id]
	if !exists || o.UsuarioID != userID {
		return nil, store.ErrOrcamentoNotFound
	}
	return o, nil
}

// Update implements the OrcamentoStore interface.
func (m *MockOrcamentoStore) Update(ctx context.Context, userID, id int64, orcamento *domain.Orcamento) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, userID, id, orcamento)
	}

	if m.UpdateErr != nil {
		return m.UpdateErr
	}

	existing, exists := m.Orcamentos[id]
	if !exists || existing.UsuarioID != userID {
		return store.ErrOrcamentoNotFound
	}

	updated := *orcamento
	updated.ID = id
	updated.UsuarioID = userID
	updated.CreatedAt = existing.CreatedAt
	m.Orcamentos[id] = &updated
	return nil
}

// Delete implements the OrcamentoStore interface.
func (m *MockOrcamentoStore) Delete(ctx context.Context, userID, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, id)
	}

	if m.DeleteErr != nil {
		return m.DeleteErr
	}

	o, exists := m.Orcamentos[id]
	if !exists || o.UsuarioID != userID {
		return store.ErrOrcamentoNotFound
	}

	delete(m.Orcamentos, id)
	return nil
}
