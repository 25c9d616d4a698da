// File: internal/feed/handler.go
package feed

import (
	"errors"
	"strconv"

	"github.com/wflore19/portfolio-backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the feed.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new feed handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("FeedHandler"),
	}
}

// RegisterRoutes sets up feed routes. Reading is public; posting requires a
// session.
func (h *Handler) RegisterRoutes(public *gin.RouterGroup, authed *gin.RouterGroup) {
	public.GET("", h.List)
	authed.POST("", h.Publish)
}

// List returns a page of feed posts.
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	rows, pagination, err := h.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		h.logger.Error("Failed to list feed posts", zap.Error(err))
		common.RespondWithError(c, err)
		return
	}

	common.RespondPaginated(c, "Feed posts retrieved successfully.", rows, pagination)
}

// Publish records a new feed post from the authenticated user.
func (h *Handler) Publish(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == 0 {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(verrs)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	post, err := h.service.Publish(c.Request.Context(), userID, req.Message)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	common.RespondCreated(c, "Feed post published successfully.", post)
}
