package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optiq-app/optiq-api/internal/api/shared"
	"github.com/optiq-app/optiq-api/internal/domain"
	"github.com/optiq-app/optiq-api/internal/mocks"
	"github.com/optiq-app/optiq-api/internal/store"
)

func authedRequest(t *testing.T, method, path string, userID int64, body any) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(shared.WithUserID(req.Context(), userID))
}

func testProfile(userID int64) *domain.Profile {
	return &domain.Profile{
		ID:           1,
		UsuarioID:    userID,
		TipoPessoa:   "fisica",
		NomeCompleto: "Maria Souza",
		CpfCnpj:      "12345678901",
		Cidade:       "Curitiba",
		Estado:       "PR",
	}
}

func TestPerfilGet_Success(t *testing.T) {
	profiles := mocks.NewMockProfileStore()
	profiles.Profiles[5] = testProfile(5)
	handler := NewPerfilHandler(profiles, nil)

	w := httptest.NewRecorder()
	handler.Get(w, authedRequest(t, http.MethodGet, "/api/perfil", 5, nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Maria Souza", body["nome_completo"])
	assert.Equal(t, "12345678901", body["cpf_cnpj"])
	assert.Equal(t, "Curitiba", body["cidade"])
}

func TestPerfilGet_NotFound(t *testing.T) {
	handler := NewPerfilHandler(mocks.NewMockProfileStore(), nil)

	w := httptest.NewRecorder()
	handler.Get(w, authedRequest(t, http.MethodGet, "/api/perfil", 5, nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, msgPerfilNaoEncontrado, decodeBody(t, w)["error"])
}

func TestPerfilGet_OnlySeesOwnProfile(t *testing.T) {
	profiles := mocks.NewMockProfileStore()
	profiles.Profiles[9] = testProfile(9)
	handler := NewPerfilHandler(profiles, nil)

	w := httptest.NewRecorder()
	handler.Get(w, authedRequest(t, http.MethodGet, "/api/perfil", 5, nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPerfilUpdate_Success(t *testing.T) {
	profiles := mocks.NewMockProfileStore()
	profiles.Profiles[5] = testProfile(5)
	handler := NewPerfilHandler(profiles, nil)

	w := httptest.NewRecorder()
	handler.Update(w, authedRequest(t, http.MethodPut, "/api/perfil", 5, map[string]any{
		"nome_completo": "Maria Souza Lima",
		"cpf_cnpj":      "12345678901",
		"cidade":        "Londrina",
	}))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Perfil atualizado com sucesso!", decodeBody(t, w)["message"])

	updated := profiles.Profiles[5]
	assert.Equal(t, "Maria Souza Lima", updated.NomeCompleto)
	assert.Equal(t, "Londrina", updated.Cidade)
	// Absent fields are overwritten with their zero value.
	assert.Empty(t, updated.Estado)
}

func TestPerfilUpdate_MissingNomeCompleto(t *testing.T) {
	profiles := mocks.NewMockProfileStore()
	profiles.Profiles[5] = testProfile(5)
	updateCalled := false
	profiles.UpdateFn = func(_ context.Context, _ int64, _ *domain.Profile) error {
		updateCalled = true
		return nil
	}
	handler := NewPerfilHandler(profiles, nil)

	w := httptest.NewRecorder()
	handler.Update(w, authedRequest(t, http.MethodPut, "/api/perfil", 5, map[string]any{
		"cidade": "Londrina",
	}))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgNomeCompletoFaltando, decodeBody(t, w)["error"])
	assert.False(t, updateCalled)
}

func TestPerfilUpdate_CpfConflict(t *testing.T) {
	profiles := mocks.NewMockProfileStore()
	profiles.Profiles[5] = testProfile(5)
	profiles.UpdateFn = func(_ context.Context, _ int64, _ *domain.Profile) error {
		return store.ErrCpfCnpjExists
	}
	handler := NewPerfilHandler(profiles, nil)

	w := httptest.NewRecorder()
	handler.Update(w, authedRequest(t, http.MethodPut, "/api/perfil", 5, map[string]any{
		"nome_completo": "Maria Souza",
		"cpf_cnpj":      "98765432100",
	}))

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, msgCpfCnpjJaCadastrado, decodeBody(t, w)["error"])
}

func TestPerfilUpdate_NotFound(t *testing.T) {
	handler := NewPerfilHandler(mocks.NewMockProfileStore(), nil)

	w := httptest.NewRecorder()
	handler.Update(w, authedRequest(t, http.MethodPut, "/api/perfil", 5, map[string]any{
		"nome_completo": "Maria Souza",
	}))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, msgPerfilNaoAtualizado, decodeBody(t, w)["error"])
}
