package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optiq-app/optiq-api/internal/mocks"
)

// nextSpy records whether the wrapped handler ran and what user ID it
// saw in the request context.
type nextSpy struct {
	called bool
	userID int64
	found  bool
}

func (s *nextSpy) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.userID, s.found = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_ValidSession(t *testing.T) {
	sessions := mocks.NewMockSessionService()
	token, err := sessions.Create(context.Background(), 42)
	require.NoError(t, err)

	spy := &nextSpy{}
	mw := NewAuthMiddleware(sessions)

	req := httptest.NewRequest(http.MethodGet, "/api/perfil", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	mw.Authenticate(spy.handler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, spy.called)
	assert.True(t, spy.found)
	assert.Equal(t, int64(42), spy.userID)
}

func TestAuthenticate_MissingCookie(t *testing.T) {
	spy := &nextSpy{}
	mw := NewAuthMiddleware(mocks.NewMockSessionService())

	req := httptest.NewRequest(http.MethodGet, "/api/perfil", nil)
	w := httptest.NewRecorder()
	mw.Authenticate(spy.handler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, spy.called)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, msgNaoAutenticado, body["error"])
}

func TestAuthenticate_UnknownSession(t *testing.T) {
	spy := &nextSpy{}
	mw := NewAuthMiddleware(mocks.NewMockSessionService())

	req := httptest.NewRequest(http.MethodGet, "/api/perfil", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale-token"})
	w := httptest.NewRecorder()
	mw.Authenticate(spy.handler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, spy.called)
}

func TestAuthenticate_DestroyedSession(t *testing.T) {
	sessions := mocks.NewMockSessionService()
	token, err := sessions.Create(context.Background(), 42)
	require.NoError(t, err)
	require.NoError(t, sessions.Destroy(context.Background(), token))

	spy := &nextSpy{}
	mw := NewAuthMiddleware(sessions)

	req := httptest.NewRequest(http.MethodGet, "/api/perfil", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	mw.Authenticate(spy.handler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, spy.called)
}
