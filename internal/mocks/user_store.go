package mocks

import (
	"context"

	"github.com/optiq-app/optiq-api/internal/domain"
	"github.com/optiq-app/optiq-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmailFn func(ctx context.Context, email string) (bool, error)

	// Data for default implementation
	Users      map[string]*domain.User
	NextID     int64
	CreateErr  error
	GetErr     error
	ExistsErr  error
}

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users:  make(map[string]*domain.User),
		NextID: 1,
	}
}

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateErr != nil {
		return m.CreateErr
	}

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	user.ID = m.NextID
	m.NextID++
	m.Users[user.Email] = user
	return nil
}

// GetByEmail implements the UserStore interface.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	if m.GetErr != nil {
		return nil, m.GetErr
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// ExistsByEmail implements the UserStore interface.
func (m *MockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFn != nil {
		return m.ExistsByEmailFn(ctx, email)
	}

	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}

	_, exists := m.Users[email]
	return exists, nil
}

// WithTx implements the UserStore interface. The mock has no
// transaction state, so it returns itself.
func (m *MockUserStore) WithTx(tx store.DBTX) store.UserStore {
	return m
}
