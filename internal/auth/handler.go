// File: internal/auth/handler.go
package auth

import (
	"context"
	"net/http"

	"github.com/wflore19/portfolio-backend/internal/avatar"
	"github.com/wflore19/portfolio-backend/internal/config"
	"github.com/wflore19/portfolio-backend/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const missingCodeFlash = "Google did not return a code"

// AvatarImporter is the importer surface the callback needs.
type AvatarImporter interface {
	Import(ctx context.Context, user *shared.User, sourceURL string) avatar.Result
}

// Handler owns the browser-facing authentication routes. The callback is the
// single entry point where a provider identity becomes a local session; every
// failure there lands the browser back on the login page rather than an
// error response.
type Handler struct {
	provider Provider
	resolver *IdentityResolver
	importer AvatarImporter
	sessions *SessionManager
	users    shared.Service
	cfg      *config.Config
	logger   *zap.Logger
}

// NewHandler creates the auth handler.
func NewHandler(
	provider Provider,
	resolver *IdentityResolver,
	importer AvatarImporter,
	sessions *SessionManager,
	users shared.Service,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		provider: provider,
		resolver: resolver,
		importer: importer,
		sessions: sessions,
		users:    users,
		cfg:      cfg,
		logger:   logger.Named("AuthHandler"),
	}
}

// RegisterRoutes mounts the authentication routes on the engine root. These
// are redirect surfaces for browsers, not JSON API endpoints, so they live
// outside the /api/v1 group.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/login", h.LoginPage)
	router.GET("/oauth/login", h.StartOAuth)
	router.GET("/oauth/callback", h.Callback)
}

// LoginPage serves the login surface: the provider consent URL plus any
// pending flash message from a failed callback.
func (h *Handler) LoginPage(c *gin.Context) {
	payload := gin.H{
		"google_auth_url": h.provider.AuthURL(),
	}
	if message := readFlash(c.Writer, c.Request, h.cfg.SessionSecure); message != "" {
		payload["message"] = message
	}
	c.JSON(http.StatusOK, payload)
}

// StartOAuth sends the browser to the provider's consent screen.
func (h *Handler) StartOAuth(c *gin.Context) {
	c.Redirect(http.StatusFound, h.provider.AuthURL())
}

// Callback handles the provider's redirect back. It exchanges the code,
// fetches the profile, resolves the identity, imports the avatar on first
// signup, and issues the session cookie. Any failure before the session is
// issued sends the browser back to the login page with nothing set.
func (h *Handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Query("code")
	if code == "" {
		h.logger.Warn("Callback arrived without a code",
			zap.Error(ErrMissingCode),
			zap.String("provider_error", c.Query("error")))
		setFlash(c.Writer, h.cfg.SessionSecure, missingCodeFlash)
		c.Redirect(http.StatusFound, h.cfg.LoginPath)
		return
	}

	tokens, err := h.provider.ExchangeCode(ctx, code)
	if err != nil {
		h.logger.Error("Code exchange failed", zap.Error(err))
		c.Redirect(http.StatusFound, h.cfg.LoginPath)
		return
	}

	profile, err := h.provider.FetchProfile(ctx, tokens)
	if err != nil {
		h.logger.Error("Profile fetch failed", zap.Error(err))
		c.Redirect(http.StatusFound, h.cfg.LoginPath)
		return
	}

	resolution, err := h.resolver.Resolve(ctx, profile)
	if err != nil {
		h.logger.Error("Identity resolution failed",
			zap.String("email", profile.Email), zap.Error(err))
		c.Redirect(http.StatusFound, h.cfg.LoginPath)
		return
	}

	user := resolution.User
	if resolution.Mode == ModeSignup {
		h.importAvatar(ctx, user, profile.AvatarSourceURL)
	}

	cookie, err := h.sessions.Issue(user.ID)
	if err != nil {
		h.logger.Error("Session issue failed", zap.Int64("userID", user.ID), zap.Error(err))
		c.Redirect(http.StatusFound, h.cfg.LoginPath)
		return
	}
	http.SetCookie(c.Writer, cookie)

	destination := h.cfg.PostLoginPath
	if resolution.Mode == ModeSignup {
		destination = h.cfg.PostSignupPath
	}
	h.logger.Info("Callback completed",
		zap.Int64("userID", user.ID),
		zap.String("mode", string(resolution.Mode)),
		zap.String("destination", destination))
	c.Redirect(http.StatusFound, destination)
}

// importAvatar copies the provider picture into storage and records the CDN
// URL on the account. The signup proceeds either way; a missing avatar is a
// cosmetic gap, not a reason to lose the user.
func (h *Handler) importAvatar(ctx context.Context, user *shared.User, sourceURL string) {
	result := h.importer.Import(ctx, user, sourceURL)
	if !result.Imported() {
		h.logger.Warn("Signup proceeding without avatar",
			zap.Int64("userID", user.ID), zap.String("reason", result.SkipReason))
		return
	}

	if err := h.users.UpdateAvatarURL(ctx, user.ID, result.URL); err != nil {
		h.logger.Warn("Avatar URL patch failed",
			zap.Int64("userID", user.ID), zap.String("url", result.URL), zap.Error(err))
		return
	}
	user.AvatarURL = result.URL
}
