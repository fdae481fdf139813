package mocks

import (
	"context"

	"github.com/optiq-app/optiq-api/internal/store"
)

// MockTransactor implements store.Transactor for testing. The default
// behavior runs the function directly with a nil transaction; mock
// stores ignore the transaction handle entirely.
type MockTransactor struct {
	TransactFn  func(ctx context.Context, fn store.TxFn) error
	TransactErr error

	// TransactCallCount tracks how many times Transact was called.
	TransactCallCount int
}

// Transact implements the store.Transactor interface.
func (m *MockTransactor) Transact(ctx context.Context, fn store.TxFn) error {
	m.TransactCallCount++

	if m.TransactFn != nil {
		return m.TransactFn(ctx, fn)
	}

	if m.TransactErr != nil {
		return m.TransactErr
	}

	return fn(ctx, nil)
}

var _ store.Transactor = (*MockTransactor)(nil)
