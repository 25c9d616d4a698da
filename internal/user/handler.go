// File: internal/user/handler.go
package user

import (
	"github.com/wflore19/portfolio-backend/internal/common"
	"github.com/wflore19/portfolio-backend/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for user operations.
type Handler struct {
	service shared.Service
	logger  *zap.Logger
}

// NewHandler creates a new user handler.
func NewHandler(service shared.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("UserHandler"),
	}
}

// RegisterRoutes sets up the routes for user operations. The group is
// expected to already carry the session middleware.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/me", h.GetMe)
}

// GetMe returns the profile of the authenticated user.
func (h *Handler) GetMe(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == 0 {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}

	u, err := h.service.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load authenticated user",
			zap.Int64("userID", userID), zap.Error(err))
		common.RespondWithError(c, err)
		return
	}

	common.RespondOK(c, "User retrieved successfully.", toUserResponse(u))
}

// UserResponse is the API shape of a user profile.
type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

func toUserResponse(u *shared.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
	}
}
