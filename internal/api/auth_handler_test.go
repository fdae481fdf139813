package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optiq-app/optiq-api/internal/api/middleware"
	"github.com/optiq-app/optiq-api/internal/domain"
	"github.com/optiq-app/optiq-api/internal/mocks"
	"github.com/optiq-app/optiq-api/internal/store"
)

// authHandlerFixture bundles an AuthHandler with the mocks behind it.
type authHandlerFixture struct {
	handler    *AuthHandler
	users      *mocks.MockUserStore
	profiles   *mocks.MockProfileStore
	transactor *mocks.MockTransactor
	hasher     *mocks.MockPasswordHasher
	verifier   *mocks.MockPasswordVerifier
	sessions   *mocks.MockSessionService
}

func newAuthHandlerFixture() *authHandlerFixture {
	f := &authHandlerFixture{
		users:      mocks.NewMockUserStore(),
		profiles:   mocks.NewMockProfileStore(),
		transactor: &mocks.MockTransactor{},
		hasher:     &mocks.MockPasswordHasher{},
		verifier:   &mocks.MockPasswordVerifier{},
		sessions:   mocks.NewMockSessionService(),
	}
	f.handler = NewAuthHandler(
		f.users,
		f.profiles,
		f.transactor,
		f.hasher,
		f.verifier,
		f.sessions,
		24*time.Hour,
		nil,
	)
	return f
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func validCadastro() map[string]any {
	return map[string]any{
		"email":         "otica@example.com",
		"senha":         "senha123",
		"tipo_pessoa":   "juridica",
		"nome_completo": "Ótica Central LTDA",
		"cpf_cnpj":      "12345678000190",
		"cidade":        "São Paulo",
	}
}

func TestCadastro_Success(t *testing.T) {
	f := newAuthHandlerFixture()

	w := postJSON(t, f.handler.Cadastro, "/api/cadastro", validCadastro())

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Usuário cadastrado com sucesso!", body["message"])
	assert.Equal(t, float64(1), body["userId"])

	// The password is hashed before it ever reaches the store.
	assert.Equal(t, 1, f.hasher.HashCallCount)
	stored := f.users.Users["otica@example.com"]
	require.NotNil(t, stored)
	assert.Empty(t, stored.Password)
	assert.Equal(t, "hashed:senha123", stored.HashedPassword)

	// User and profile went through one transaction.
	assert.Equal(t, 1, f.transactor.TransactCallCount)
	profile := f.profiles.Profiles[stored.ID]
	require.NotNil(t, profile)
	assert.Equal(t, "Ótica Central LTDA", profile.NomeCompleto)
	assert.Equal(t, "São Paulo", profile.Cidade)
}

func TestCadastro_MissingRequiredFields(t *testing.T) {
	required := []string{"email", "senha", "tipo_pessoa", "nome_completo", "cpf_cnpj"}

	for _, field := range required {
		t.Run(field, func(t *testing.T) {
			f := newAuthHandlerFixture()

			payload := validCadastro()
			delete(payload, field)

			w := postJSON(t, f.handler.Cadastro, "/api/cadastro", payload)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, msgCamposFaltando, decodeBody(t, w)["error"])
			assert.Equal(t, 0, f.transactor.TransactCallCount)
		})
	}
}

func TestCadastro_MalformedJSON(t *testing.T) {
	f := newAuthHandlerFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/cadastro", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	f.handler.Cadastro(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCadastro_DuplicateEmail(t *testing.T) {
	f := newAuthHandlerFixture()
	f.users.Users["otica@example.com"] = &domain.User{ID: 7, Email: "otica@example.com"}

	w := postJSON(t, f.handler.Cadastro, "/api/cadastro", validCadastro())

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, msgEmailJaCadastrado, decodeBody(t, w)["error"])
	assert.Equal(t, 0, f.transactor.TransactCallCount)
}

func TestCadastro_DuplicateCpfCnpj(t *testing.T) {
	f := newAuthHandlerFixture()
	f.profiles.Profiles[9] = &domain.Profile{ID: 1, UsuarioID: 9, CpfCnpj: "12345678000190"}

	w := postJSON(t, f.handler.Cadastro, "/api/cadastro", validCadastro())

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, msgCpfCnpjJaCadastrado, decodeBody(t, w)["error"])
}

func TestCadastro_ConstraintRaceStillConflicts(t *testing.T) {
	// The pre-checks pass but the insert itself hits the unique
	// constraint, as happens when two registrations race.
	f := newAuthHandlerFixture()
	f.users.CreateFn = func(ctx context.Context, user *domain.User) error {
		return store.ErrEmailExists
	}

	w := postJSON(t, f.handler.Cadastro, "/api/cadastro", validCadastro())

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, msgEmailJaCadastrado, decodeBody(t, w)["error"])
}

func TestCadastro_TransactionFailure(t *testing.T) {
	f := newAuthHandlerFixture()
	f.transactor.TransactErr = errors.New("connection reset")

	w := postJSON(t, f.handler.Cadastro, "/api/cadastro", validCadastro())

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, msgErroInterno, decodeBody(t, w)["error"])
}

func TestLogin_Success(t *testing.T) {
	f := newAuthHandlerFixture()
	f.users.Users["otica@example.com"] = &domain.User{
		ID:             5,
		Email:          "otica@example.com",
		HashedPassword: "hashed:senha123",
	}

	w := postJSON(t, f.handler.Login, "/api/login", map[string]any{
		"email": "otica@example.com",
		"senha": "senha123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login realizado com sucesso!", decodeBody(t, w)["message"])
	assert.Equal(t, "hashed:senha123", f.verifier.CompareCalledWith.HashedPassword)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, middleware.SessionCookieName, cookie.Name)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)

	// The cookie value is a live session.
	userID, err := f.sessions.Validate(context.Background(), cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, int64(5), userID)
}

func TestLogin_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	unknownEmail := func() *authHandlerFixture {
		return newAuthHandlerFixture()
	}
	wrongPassword := func() *authHandlerFixture {
		f := newAuthHandlerFixture()
		f.users.Users["otica@example.com"] = &domain.User{
			ID:             5,
			Email:          "otica@example.com",
			HashedPassword: "hashed:outra",
		}
		f.verifier.CompareErr = errors.New("mismatch")
		return f
	}

	payload := map[string]any{"email": "otica@example.com", "senha": "senha123"}

	wUnknown := postJSON(t, unknownEmail().handler.Login, "/api/login", payload)
	wWrong := postJSON(t, wrongPassword().handler.Login, "/api/login", payload)

	assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wWrong.Code)
	// Same status, same body: nothing reveals which check failed.
	assert.Equal(t, wUnknown.Body.String(), wWrong.Body.String())
	assert.Equal(t, msgCredenciaisInvalidas, decodeBody(t, wUnknown)["error"])
}

func TestLogin_MissingFields(t *testing.T) {
	f := newAuthHandlerFixture()

	w := postJSON(t, f.handler.Login, "/api/login", map[string]any{"email": "otica@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, f.verifier.CompareCallCount)
}

func TestLogout_Success(t *testing.T) {
	f := newAuthHandlerFixture()

	token, err := f.sessions.Create(context.Background(), 5)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	f.handler.Logout(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logout realizado com sucesso!", decodeBody(t, w)["message"])

	// The session is gone and the cookie is cleared.
	_, err = f.sessions.Validate(context.Background(), token)
	assert.Error(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestLogout_WithoutSession(t *testing.T) {
	f := newAuthHandlerFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	w := httptest.NewRecorder()
	f.handler.Logout(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, msgNaoAutenticado, decodeBody(t, w)["error"])
}

func TestLogout_Twice(t *testing.T) {
	f := newAuthHandlerFixture()

	token, err := f.sessions.Create(context.Background(), 5)
	require.NoError(t, err)

	logout := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
		w := httptest.NewRecorder()
		f.handler.Logout(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, logout().Code)
	assert.Equal(t, http.StatusUnauthorized, logout().Code)
}
