// File: internal/auth/session.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/wflore19/portfolio-backend/internal/common"
	"github.com/wflore19/portfolio-backend/internal/config"
	"github.com/wflore19/portfolio-backend/internal/shared"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const sessionIssuer = "portfolio-backend"

// Session is the client-held authentication state: a single userId pointer.
// The zero value is the anonymous session.
type Session struct {
	userID int64
}

// UserID returns the stored user id. Callers must have already confirmed
// authentication; this accessor is not itself a safety check.
func (s Session) UserID() int64 {
	return s.userID
}

// Present reports whether the session carries a user id at all.
func (s Session) Present() bool {
	return s.userID != 0
}

// SessionManager issues and validates the signed cookie session. There is no
// server-side session store: all state round-trips through the browser, and
// rotating the signing secret is the only way to invalidate sessions in bulk.
type SessionManager struct {
	secret     []byte
	cookieName string
	maxAge     time.Duration
	secure     bool
	users      shared.Service
	logger     *zap.Logger
}

// NewSessionManager creates a session manager from application configuration.
func NewSessionManager(cfg *config.Config, users shared.Service, logger *zap.Logger) *SessionManager {
	return &SessionManager{
		secret:     []byte(cfg.SessionSecret),
		cookieName: cfg.SessionCookieName,
		maxAge:     cfg.SessionMaxAge,
		secure:     cfg.SessionSecure,
		users:      users,
		logger:     logger.Named("SessionManager"),
	}
}

// Issue serializes the user id into a signed session cookie with the fixed
// long expiry.
func (m *SessionManager) Issue(userID int64) (*http.Cookie, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		Issuer:    sessionIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.maxAge)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("auth: signing session: %w", err)
	}

	return &http.Cookie{
		Name:     m.cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Read parses the session cookie from the request. An absent, expired,
// tampered, or otherwise invalid cookie yields the anonymous session, never
// an error; protected routes get one uniform branch.
func (m *SessionManager) Read(r *http.Request) Session {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return Session{}
	}

	token, err := jwt.ParseWithClaims(
		cookie.Value,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		m.logger.Debug("Rejected session cookie", zap.Error(err))
		return Session{}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return Session{}
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		m.logger.Debug("Session cookie carries a malformed subject", zap.String("subject", claims.Subject))
		return Session{}
	}

	return Session{userID: userID}
}

// IsAuthenticated reports whether the session identifies a live user: the
// cookie must have parsed AND the directory must still know the id. A stale
// session pointing at a deleted user is unauthenticated, not an error.
func (m *SessionManager) IsAuthenticated(ctx context.Context, s Session) bool {
	if !s.Present() {
		return false
	}

	if _, err := m.users.GetUserByID(ctx, s.userID); err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			m.logger.Warn("Directory lookup failed during session check",
				zap.Int64("userID", s.userID), zap.Error(err))
		}
		return false
	}
	return true
}
