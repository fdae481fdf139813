package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/optiq-app/optiq-api/internal/config"
	"github.com/optiq-app/optiq-api/internal/platform/logger"
)

// defaultSweepInterval is how often expired sessions are removed from
// the server-side map. Expired sessions already fail Validate before
// the sweep reaches them; sweeping only bounds memory growth.
const defaultSweepInterval = 10 * time.Minute

// sessionEntry is the server-side state of one login session.
type sessionEntry struct {
	userID    int64
	expiresAt time.Time
}

// memorySessionService implements SessionService with an in-process,
// mutex-guarded map. The token handed to callers is an HS256-signed
// JWT whose jti is the map key, so the cookie value is tamper-evident
// while every piece of session state stays server-side. The token
// payload carries no user data.
type memorySessionService struct {
	signingKey []byte
	lifetime   time.Duration
	timeFunc   func() time.Time // Injectable for testing

	mu       sync.RWMutex
	sessions map[string]sessionEntry

	logger *slog.Logger
	stopCh chan struct{}
	once   sync.Once
}

// Ensure memorySessionService implements SessionService.
var _ SessionService = (*memorySessionService)(nil)

// NewSessionService creates the session manager and starts its
// background expiry sweeper. Callers must Close it on shutdown.
func NewSessionService(cfg config.AuthConfig, log *slog.Logger) (*memorySessionService, error) {
	if len(cfg.SessionSecret) < 32 {
		return nil, fmt.Errorf("session secret must be at least 32 characters")
	}
	if log == nil {
		log = slog.Default()
	}

	s := &memorySessionService{
		signingKey: []byte(cfg.SessionSecret),
		lifetime:   time.Duration(cfg.SessionLifetimeHours) * time.Hour,
		timeFunc:   time.Now,
		sessions:   make(map[string]sessionEntry),
		logger:     log.With(slog.String("component", "session_service")),
		stopCh:     make(chan struct{}),
	}

	go s.sweepLoop(defaultSweepInterval)

	return s, nil
}

// Create implements SessionService.Create.
func (s *memorySessionService) Create(ctx context.Context, userID int64) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	now := s.timeFunc()

	sid := uuid.NewString()
	expiresAt := now.Add(s.lifetime)

	claims := jwt.RegisteredClaims{
		ID:        sid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign session token",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	s.mu.Lock()
	s.sessions[sid] = sessionEntry{userID: userID, expiresAt: expiresAt}
	s.mu.Unlock()

	log.Debug("session created", slog.Int64("user_id", userID))
	return token, nil
}

// Validate implements SessionService.Validate.
func (s *memorySessionService) Validate(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrSessionInvalid
	}

	sid, err := s.parseSessionID(token)
	if err != nil {
		return 0, ErrSessionInvalid
	}

	s.mu.RLock()
	entry, ok := s.sessions[sid]
	s.mu.RUnlock()

	if !ok {
		return 0, ErrSessionInvalid
	}

	// Absolute expiry: the server-side timestamp is authoritative and
	// is never pushed forward by activity.
	if s.timeFunc().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sid)
		s.mu.Unlock()
		return 0, ErrSessionInvalid
	}

	return entry.userID, nil
}

// Destroy implements SessionService.Destroy.
func (s *memorySessionService) Destroy(ctx context.Context, token string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sid, err := s.parseSessionID(token)
	if err != nil {
		return ErrSessionInvalid
	}

	s.mu.Lock()
	entry, ok := s.sessions[sid]
	if ok {
		delete(s.sessions, sid)
	}
	s.mu.Unlock()

	if !ok {
		return ErrSessionInvalid
	}

	log.Debug("session destroyed", slog.Int64("user_id", entry.userID))
	return nil
}

// Close stops the background sweeper. Safe to call more than once.
func (s *memorySessionService) Close() {
	s.once.Do(func() { close(s.stopCh) })
}

// parseSessionID verifies the token signature and returns the
// server-side session key it references.
func (s *memorySessionService) parseSessionID(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time { return s.timeFunc() }),
	)
	if err != nil || !parsed.Valid || claims.ID == "" {
		return "", ErrSessionInvalid
	}
	return claims.ID, nil
}

// sweepLoop periodically removes expired entries until Close is called.
func (s *memorySessionService) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep removes every expired session in one pass.
func (s *memorySessionService) sweep() {
	now := s.timeFunc()

	s.mu.Lock()
	removed := 0
	for sid, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, sid)
			removed++
		}
	}
	remaining := len(s.sessions)
	s.mu.Unlock()

	if removed > 0 {
		s.logger.Debug("swept expired sessions",
			slog.Int("removed", removed),
			slog.Int("remaining", remaining))
	}
}
