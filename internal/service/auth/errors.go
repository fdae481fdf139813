package auth

import "errors"

// Common authentication service errors.
var (
	// ErrSessionInvalid indicates the session token is missing, unknown,
	// tampered with, or expired. Callers receive this single error for
	// every failure mode so that no detail leaks about which one it was.
	ErrSessionInvalid = errors.New("session is invalid")

	// ErrInvalidCredentials indicates a failed login. Unknown email and
	// wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
