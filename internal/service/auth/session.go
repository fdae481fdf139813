package auth

import "context"

// SessionService manages the lifecycle of login sessions. Session state
// lives server-side, keyed by an unguessable identifier; the caller
// only ever holds a signed token referencing it. Multiple concurrent
// sessions per user are permitted.
type SessionService interface {
	// Create issues a new session bound to the given user and returns
	// the token to hand to the caller (via the session cookie).
	Create(ctx context.Context, userID int64) (string, error)

	// Validate resolves a token to the owning user ID.
	// Returns ErrSessionInvalid if the token is missing, unknown,
	// tampered with, or the session has passed its absolute expiry.
	// Expiry is absolute: validation never extends a session.
	Validate(ctx context.Context, token string) (int64, error)

	// Destroy permanently invalidates the session referenced by the
	// token. Returns ErrSessionInvalid if the token does not correspond
	// to a live session. A destroyed token can never be reused.
	Destroy(ctx context.Context, token string) error
}
