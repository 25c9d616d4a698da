// File: internal/project/handler.go
package project

import (
	"strconv"

	"github.com/wflore19/portfolio-backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the project showcase.
type Handler struct {
	repo   Repository
	logger *zap.Logger
}

// NewHandler creates a new project handler.
func NewHandler(repo Repository, logger *zap.Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger.Named("ProjectHandler"),
	}
}

// RegisterRoutes sets up the public project routes.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.GET("/:id", h.Get)
}

// List returns every project in display order.
func (h *Handler) List(c *gin.Context) {
	projects, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list projects", zap.Error(err))
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Projects retrieved successfully.", projects)
}

// Get returns a single project by id.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Project id must be a positive integer."))
		return
	}

	p, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Project retrieved successfully.", p)
}
