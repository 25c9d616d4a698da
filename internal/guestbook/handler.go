// File: internal/guestbook/handler.go
package guestbook

import (
	"errors"
	"strconv"

	"github.com/wflore19/portfolio-backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the guestbook.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new guestbook handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("GuestbookHandler"),
	}
}

// RegisterRoutes sets up guestbook routes. Reading is public; signing
// requires a session.
func (h *Handler) RegisterRoutes(public *gin.RouterGroup, authed *gin.RouterGroup) {
	public.GET("", h.List)
	authed.POST("", h.Sign)
}

// List returns a page of guestbook messages.
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	rows, pagination, err := h.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		h.logger.Error("Failed to list guestbook messages", zap.Error(err))
		common.RespondWithError(c, err)
		return
	}

	common.RespondPaginated(c, "Guestbook messages retrieved successfully.", rows, pagination)
}

// Sign records a new guestbook message from the authenticated user.
func (h *Handler) Sign(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == 0 {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}

	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(verrs)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	message, err := h.service.Sign(c.Request.Context(), userID, req.Message)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	common.RespondCreated(c, "Guestbook signed successfully.", message)
}
