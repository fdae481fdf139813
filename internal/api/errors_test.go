package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optiq-app/optiq-api/internal/service/auth"
	"github.com/optiq-app/optiq-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "session invalid", err: auth.ErrSessionInvalid, want: http.StatusUnauthorized},
		{name: "invalid credentials", err: auth.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "user not found", err: store.ErrUserNotFound, want: http.StatusNotFound},
		{name: "orcamento not found", err: store.ErrOrcamentoNotFound, want: http.StatusNotFound},
		{name: "email exists", err: store.ErrEmailExists, want: http.StatusConflict},
		{name: "cpf_cnpj exists", err: store.ErrCpfCnpjExists, want: http.StatusConflict},
		{name: "wrapped duplicate", err: fmt.Errorf("insert: %w", store.ErrCpfCnpjExists), want: http.StatusConflict},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, msgEmailJaCadastrado, GetSafeErrorMessage(store.ErrEmailExists))
	assert.Equal(t, msgCpfCnpjJaCadastrado, GetSafeErrorMessage(store.ErrCpfCnpjExists))
	assert.Equal(t, msgNaoAutenticado, GetSafeErrorMessage(auth.ErrSessionInvalid))
	assert.Equal(t, msgPerfilNaoEncontrado, GetSafeErrorMessage(store.ErrProfileNotFound))
	assert.Equal(t, msgOrcamentoNaoEncontrado, GetSafeErrorMessage(store.ErrOrcamentoNotFound))

	// Internal detail never reaches the client.
	assert.Equal(t, msgErroInterno, GetSafeErrorMessage(errors.New("pq: relation does not exist")))
}
