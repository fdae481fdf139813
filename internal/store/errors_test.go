package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityErrorsWrapSentinels(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrProfileNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrOrcamentoNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)
	assert.ErrorIs(t, ErrCpfCnpjExists, ErrDuplicate)

	// Categories stay disjoint.
	assert.NotErrorIs(t, ErrUserNotFound, ErrDuplicate)
	assert.NotErrorIs(t, ErrEmailExists, ErrNotFound)
}

func TestErrorCategoryHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrOrcamentoNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("query failed: %w", ErrProfileNotFound)))
	assert.False(t, IsNotFoundError(errors.New("timeout")))

	assert.True(t, IsDuplicateError(ErrCpfCnpjExists))
	assert.False(t, IsDuplicateError(ErrUserNotFound))
	assert.False(t, IsDuplicateError(nil))
}
