package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. Entity-specific variants wrap this error.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a
	// duplicate of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation or
	// violates a referential constraint before being stored.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction
	// fails to commit or an operation within it fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors.

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrProfileNotFound indicates that the user has no profile row, or
	// that a scoped update matched zero rows.
	ErrProfileNotFound = fmt.Errorf("%w: profile", ErrNotFound)

	// ErrOrcamentoNotFound indicates that no orcamento matched the
	// (id, usuario_id) pair. Ownership mismatch and nonexistence are
	// deliberately indistinguishable.
	ErrOrcamentoNotFound = fmt.Errorf("%w: orcamento", ErrNotFound)

	// Entity-specific "duplicate" errors.

	// ErrEmailExists indicates that a user with the given email already
	// exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrCpfCnpjExists indicates that another profile already holds the
	// given cpf_cnpj.
	ErrCpfCnpjExists = fmt.Errorf("%w: cpf_cnpj", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
