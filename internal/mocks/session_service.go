package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/optiq-app/optiq-api/internal/service/auth"
)

// MockSessionService implements auth.SessionService for testing.
type MockSessionService struct {
	CreateFn   func(ctx context.Context, userID int64) (string, error)
	ValidateFn func(ctx context.Context, token string) (int64, error)
	DestroyFn  func(ctx context.Context, token string) error

	// Sessions maps token -> user ID for the default behavior.
	Sessions    map[string]int64
	CreateErr   error
	ValidateErr error
	DestroyErr  error
}

// NewMockSessionService creates a new mock with initialized defaults.
func NewMockSessionService() *MockSessionService {
	return &MockSessionService{
		Sessions: make(map[string]int64),
	}
}

// Create implements the SessionService interface.
func (m *MockSessionService) Create(ctx context.Context, userID int64) (string, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, userID)
	}

	if m.CreateErr != nil {
		return "", m.CreateErr
	}

	token := uuid.NewString()
	m.Sessions[token] = userID
	return token, nil
}

// Validate implements the SessionService interface.
func (m *MockSessionService) Validate(ctx context.Context, token string) (int64, error) {
	if m.ValidateFn != nil {
		return m.ValidateFn(ctx, token)
	}

	if m.ValidateErr != nil {
		return 0, m.ValidateErr
	}

	userID, exists := m.Sessions[token]
	if !exists {
		return 0, auth.ErrSessionInvalid
	}
	return userID, nil
}

// Destroy implements the SessionService interface.
func (m *MockSessionService) Destroy(ctx context.Context, token string) error {
	if m.DestroyFn != nil {
		return m.DestroyFn(ctx, token)
	}

	if m.DestroyErr != nil {
		return m.DestroyErr
	}

	if _, exists := m.Sessions[token]; !exists {
		return auth.ErrSessionInvalid
	}
	delete(m.Sessions, token)
	return nil
}
