// File: internal/middleware/auth.go
package middleware

import (
	"github.com/wflore19/portfolio-backend/internal/auth"
	"github.com/wflore19/portfolio-backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionAuth creates a Gin middleware that gates routes on the signed
// session cookie. The cookie must parse and the user it names must still
// exist; anything else is a 401.
func SessionAuth(sessions *auth.SessionManager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Read(c.Request)
		if !session.Present() {
			logger.Debug("Request carries no usable session cookie",
				zap.String("path", c.Request.URL.Path))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authentication is required."))
			return
		}

		if !sessions.IsAuthenticated(c.Request.Context(), session) {
			logger.Debug("Session references an unknown user",
				zap.Int64("userID", session.UserID()))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Session is no longer valid."))
			return
		}

		c.Set(common.UserIDKey, session.UserID())
		c.Next()
	}
}
