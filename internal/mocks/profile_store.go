package mocks

import (
	"context"

	"github.com/optiq-app/optiq-api/internal/domain"
	"github.com/optiq-app/optiq-api/internal/store"
)

// MockProfileStore implements store.ProfileStore for testing.
type MockProfileStore struct {
	CreateFn          func(ctx context.Context, profile *domain.Profile) error
	GetByUserIDFn     func(ctx context.Context, userID int64) (*domain.Profile, error)
	UpdateFn          func(ctx context.Context, userID int64, profile *domain.Profile) error
	ExistsByCpfCnpjFn func(ctx context.Context, cpfCnpj string) (bool, error)

	// Profiles is keyed by owning user ID.
	Profiles  map[int64]*domain.Profile
	NextID    int64
	CreateErr error
	GetErr    error
	UpdateErr error
	ExistsErr error
}

// NewMockProfileStore creates a new mock store with initialized defaults.
func NewMockProfileStore() *MockProfileStore {
	return &MockProfileStore{
		Profiles: make(map[int64]*domain.Profile),
		NextID:   1,
	}
}

// Create implements the ProfileStore interface.
func (m *MockProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, profile)
	}

	if m.CreateErr != nil {
		return m.CreateErr
	}

	for _, existing := range m.Profiles {
		if existing.CpfCnpj == profile.CpfCnpj {
			return store.ErrCpfCnpjExists
		}
	}

	profile.ID = m.NextID
	m.NextID++
	m.Profiles[profile.UsuarioID] = profile
	return nil
}

// GetByUserID implements the ProfileStore interface.
func (m *MockProfileStore) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}

	if m.GetErr != nil {
		return nil, m.GetErr
	}

	profile, exists := m.Profiles[userID]
	if !exists {
		return nil, store.ErrProfileNotFound
	}
	return profile, nil
}

// Update implements the ProfileStore interface.
func (m *MockProfileStore) Update(ctx context.Context, userID int64, profile *domain.Profile) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, userID, profile)
	}

	if m.UpdateErr != nil {
		return m.UpdateErr
	}

	existing, exists := m.Profiles[userID]
	if !exists {
		return store.ErrProfileNotFound
	}

	updated := *profile
	updated.ID = existing.ID
	updated.UsuarioID = userID
	updated.TipoPessoa = existing.TipoPessoa
	updated.CreatedAt = existing.CreatedAt
	m.Profiles[userID] = &updated
	return nil
}

// ExistsByCpfCnpj implements the ProfileStore interface.
func (m *MockProfileStore) ExistsByCpfCnpj(ctx context.Context, cpfCnpj string) (bool, error) {
	if m.ExistsByCpfCnpjFn != nil {
		return m.ExistsByCpfCnpjFn(ctx, cpfCnpj)
	}

	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}

	for _, profile := range m.Profiles {
		if profile.CpfCnpj == cpfCnpj {
			return true, nil
		}
	}
	return false, nil
}

// WithTx implements the ProfileStore interface.
func (m *MockProfileStore) WithTx(tx store.DBTX) store.ProfileStore {
	return m
}
