package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	t.Parallel()

	// MinCost keeps the test fast; the wiring decides the real cost.
	hasher := NewBcryptHasher(bcrypt.MinCost)
	verifier := NewBcryptVerifier()

	digest, err := hasher.Hash("senha-secreta")
	require.NoError(t, err)
	assert.NotEqual(t, "senha-secreta", digest)
	assert.True(t, strings.HasPrefix(digest, "$2a$"))

	assert.NoError(t, verifier.Compare(digest, "senha-secreta"))
	assert.Error(t, verifier.Compare(digest, "senha-errada"))
}

func TestBcryptHasher_DistinctDigestsForSamePassword(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("mesma-senha")
	require.NoError(t, err)
	second, err := hasher.Hash("mesma-senha")
	require.NoError(t, err)

	// Each digest carries its own salt.
	assert.NotEqual(t, first, second)
}

func TestBcryptVerifier_RejectsMalformedDigest(t *testing.T) {
	t.Parallel()

	verifier := NewBcryptVerifier()
	assert.Error(t, verifier.Compare("not-a-bcrypt-digest", "senha"))
}
