// Package shared holds helpers used by handlers and middleware alike:
// context keys, request decoding, and response writing.
package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
)

// ContextKey is the type for context values set by this package.
type ContextKey string

// Context keys for request-scoped values.
const (
	// UserIDContextKey is the context key under which the auth
	// middleware stores the authenticated user's ID (int64).
	UserIDContextKey ContextKey = "userID"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// traceIDLength is the number of random bytes in a trace ID.
	traceIDLength = 16 // 32 hex characters
)

// SetTraceID adds a fresh trace ID to the context for correlating logs
// across one request.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" when none
// was set.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// UserID retrieves the authenticated user's ID from the context.
// The second return value is false when no auth middleware ran.
func UserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(int64)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}

// WithUserID returns a context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDContextKey, userID)
}

// generateTraceID creates a random 32-character hex trace ID.
func generateTraceID() string {
	b := make([]byte, traceIDLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively unrecoverable; log and
		// continue without a trace ID rather than aborting the request.
		slog.Error("failed to generate trace ID", "error", err)
		return ""
	}
	return hex.EncodeToString(b)
}
