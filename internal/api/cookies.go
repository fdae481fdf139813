package api

import (
	"net/http"
	"time"

	"github.com/optiq-app/optiq-api/internal/api/middleware"
)

// newSessionCookie builds the session cookie set on login. HTTP-only so
// scripts cannot read it; Secure is off because deployments still run
// over plain HTTP.
func newSessionCookie(token string, lifetime time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(lifetime / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
}

// expiredSessionCookie builds the cookie that clears the session on
// logout.
func expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
}
