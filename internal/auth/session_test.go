// File: internal/auth/session_test.go
package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wflore19/portfolio-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sessionTestConfig() *config.Config {
	return &config.Config{
		SessionSecret:     "test-secret-please-rotate",
		SessionCookieName: "__session",
		SessionMaxAge:     365 * 24 * time.Hour,
		SessionSecure:     false,
	}
}

func requestWithCookie(cookie *http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	if cookie != nil {
		r.AddCookie(cookie)
	}
	return r
}

func TestSessionManager_IssueAndRead(t *testing.T) {
	users := newFakeDirectory()
	mgr := NewSessionManager(sessionTestConfig(), users, zap.NewNop())

	cookie, err := mgr.Issue(42)
	require.NoError(t, err)
	assert.Equal(t, "__session", cookie.Name)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((365 * 24 * time.Hour).Seconds()), cookie.MaxAge)

	session := mgr.Read(requestWithCookie(cookie))
	assert.True(t, session.Present())
	assert.Equal(t, int64(42), session.UserID())
}

func TestSessionManager_ReadMissingCookie(t *testing.T) {
	mgr := NewSessionManager(sessionTestConfig(), newFakeDirectory(), zap.NewNop())

	session := mgr.Read(requestWithCookie(nil))
	assert.False(t, session.Present())
	assert.Zero(t, session.UserID())
}

func TestSessionManager_ReadTamperedCookie(t *testing.T) {
	mgr := NewSessionManager(sessionTestConfig(), newFakeDirectory(), zap.NewNop())

	cookie, err := mgr.Issue(42)
	require.NoError(t, err)
	cookie.Value += "x"

	session := mgr.Read(requestWithCookie(cookie))
	assert.False(t, session.Present())
}

func TestSessionManager_ReadWrongSecret(t *testing.T) {
	mgr := NewSessionManager(sessionTestConfig(), newFakeDirectory(), zap.NewNop())

	otherCfg := sessionTestConfig()
	otherCfg.SessionSecret = "a-completely-different-secret"
	other := NewSessionManager(otherCfg, newFakeDirectory(), zap.NewNop())

	cookie, err := other.Issue(42)
	require.NoError(t, err)

	session := mgr.Read(requestWithCookie(cookie))
	assert.False(t, session.Present(), "rotating the secret must invalidate old cookies")
}

func TestSessionManager_ReadExpiredCookie(t *testing.T) {
	cfg := sessionTestConfig()
	mgr := NewSessionManager(cfg, newFakeDirectory(), zap.NewNop())

	claims := jwt.RegisteredClaims{
		Subject:   "42",
		Issuer:    sessionIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SessionSecret))
	require.NoError(t, err)

	session := mgr.Read(requestWithCookie(&http.Cookie{Name: cfg.SessionCookieName, Value: signed}))
	assert.False(t, session.Present())
}

func TestSessionManager_ReadRejectsAlgNone(t *testing.T) {
	cfg := sessionTestConfig()
	mgr := NewSessionManager(cfg, newFakeDirectory(), zap.NewNop())

	claims := jwt.RegisteredClaims{
		Subject:   "42",
		Issuer:    sessionIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	session := mgr.Read(requestWithCookie(&http.Cookie{Name: cfg.SessionCookieName, Value: unsigned}))
	assert.False(t, session.Present())
}

func TestSessionManager_IsAuthenticated(t *testing.T) {
	users := newFakeDirectory()
	mgr := NewSessionManager(sessionTestConfig(), users, zap.NewNop())
	ctx := context.Background()

	u := users.seed("ada@example.com", "Ada", "L")

	assert.True(t, mgr.IsAuthenticated(ctx, Session{userID: u.ID}))
	assert.False(t, mgr.IsAuthenticated(ctx, Session{}), "anonymous session is never authenticated")
	assert.False(t, mgr.IsAuthenticated(ctx, Session{userID: 9999}), "stale session for a deleted user is unauthenticated")
}
