package mocks

import "github.com/optiq-app/optiq-api/internal/service/auth"

// MockPasswordHasher implements auth.PasswordHasher for testing.
type MockPasswordHasher struct {
	HashFn  func(password string) (string, error)
	HashErr error

	// HashCallCount tracks how many times Hash was called.
	HashCallCount int
}

// Hash implements the auth.PasswordHasher interface. The default
// behavior returns a recognizable fake digest.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.HashCallCount++

	if m.HashFn != nil {
		return m.HashFn(password)
	}

	if m.HashErr != nil {
		return "", m.HashErr
	}

	return "hashed:" + password, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error

	// CompareErr is returned from Compare when no CompareFn is set.
	// A nil value means every comparison succeeds.
	CompareErr error

	// CompareCalledWith stores the arguments passed to Compare.
	CompareCalledWith struct {
		HashedPassword string
		Password       string
	}

	// CompareCallCount tracks how many times Compare was called.
	CompareCallCount int
}

// Compare implements the auth.PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.CompareCalledWith.HashedPassword = hashedPassword
	m.CompareCalledWith.Password = password
	m.CompareCallCount++

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}

	return m.CompareErr
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)
var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)
