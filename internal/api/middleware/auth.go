// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/optiq-app/optiq-api/internal/api/shared"
	"github.com/optiq-app/optiq-api/internal/service/auth"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "optiq_session"

// msgNaoAutenticado is the uniform 401 body for every authentication
// failure: missing cookie, unknown session, bad signature, or expiry.
const msgNaoAutenticado = "Não autenticado."

// AuthMiddleware gates protected routes on a valid session. It is the
// only place requests are authenticated; no handler touches storage
// before this check passes.
type AuthMiddleware struct {
	sessions auth.SessionService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(sessions auth.SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate validates the session cookie and adds the user ID to the
// request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgNaoAutenticado)
			return
		}

		userID, err := m.sessions.Validate(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, auth.ErrSessionInvalid) {
				slog.Error("failed to validate session", "error", err)
			}
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgNaoAutenticado)
			return
		}

		ctx := shared.WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (int64, bool) {
	return shared.UserID(r.Context())
}
