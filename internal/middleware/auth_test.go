// File: internal/middleware/auth_test.go
package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wflore19/portfolio-backend/internal/auth"
	"github.com/wflore19/portfolio-backend/internal/common"
	"github.com/wflore19/portfolio-backend/internal/config"
	"github.com/wflore19/portfolio-backend/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticDirectory struct {
	users map[int64]*shared.User
}

func (s *staticDirectory) GetUserByID(ctx context.Context, id int64) (*shared.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, common.ErrNotFound
}

func (s *staticDirectory) GetUserByEmail(ctx context.Context, email string) (*shared.User, error) {
	return nil, common.ErrNotFound
}

func (s *staticDirectory) CreateUser(ctx context.Context, email, firstName, lastName string) (*shared.User, error) {
	return nil, common.ErrInternalServer
}

func (s *staticDirectory) UpdateAvatarURL(ctx context.Context, id int64, avatarURL string) error {
	return nil
}

func setupProtectedRoute(t *testing.T) (*gin.Engine, *auth.SessionManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		SessionSecret:     "test-secret-please-rotate",
		SessionCookieName: "__session",
		SessionMaxAge:     24 * time.Hour,
	}
	directory := &staticDirectory{users: map[int64]*shared.User{
		42: {ID: 42, Email: "ada@example.com", FirstName: "Ada", LastName: "L"},
	}}
	sessions := auth.NewSessionManager(cfg, directory, zap.NewNop())

	router := gin.New()
	router.GET("/protected", SessionAuth(sessions, zap.NewNop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": common.GetUserIDFromContext(c)})
	})
	return router, sessions
}

func TestSessionAuth_AllowsValidSession(t *testing.T) {
	router, sessions := setupProtectedRoute(t)

	cookie, err := sessions.Issue(42)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.AddCookie(cookie)
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestSessionAuth_RejectsMissingCookie(t *testing.T) {
	router, _ := setupProtectedRoute(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuth_RejectsUnknownUser(t *testing.T) {
	router, sessions := setupProtectedRoute(t)

	cookie, err := sessions.Issue(9999)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.AddCookie(cookie)
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
