// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/wflore19/portfolio-backend/internal/auth"
	"github.com/wflore19/portfolio-backend/internal/config"
	"github.com/wflore19/portfolio-backend/internal/feed"
	"github.com/wflore19/portfolio-backend/internal/guestbook"
	"github.com/wflore19/portfolio-backend/internal/middleware"
	"github.com/wflore19/portfolio-backend/internal/project"
	"github.com/wflore19/portfolio-backend/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	// Handlers
	authHandler      *auth.Handler
	userHandler      *user.Handler
	guestbookHandler *guestbook.Handler
	feedHandler      *feed.Handler
	projectHandler   *project.Handler

	// Middleware instances
	sessionMW gin.HandlerFunc
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	guestbookHandler *guestbook.Handler,
	feedHandler *feed.Handler,
	projectHandler *project.Handler,
	sessions *auth.SessionManager,
) (*Server, error) {
	if err := migrate(db); err != nil {
		return nil, err
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	// CORS Middleware. Credentials must be allowed for the session cookie,
	// which rules out a wildcard origin.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.AppURL}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	sessionMW := middleware.SessionAuth(sessions, logger.Named("SessionAuth"))

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Portfolio API is healthy!"})
	})

	// Browser-facing auth routes live at the root, outside /api/v1.
	authHandler.RegisterRoutes(router)

	v1 := router.Group("/api/v1")

	userGroup := v1.Group("/users", sessionMW)
	userHandler.RegisterRoutes(userGroup)

	guestbookHandler.RegisterRoutes(v1.Group("/book"), v1.Group("/book", sessionMW))
	feedHandler.RegisterRoutes(v1.Group("/feed"), v1.Group("/feed", sessionMW))
	projectHandler.RegisterRoutes(v1.Group("/projects"))

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:       httpServer,
		router:           router,
		cfg:              cfg,
		logger:           logger,
		authHandler:      authHandler,
		userHandler:      userHandler,
		guestbookHandler: guestbookHandler,
		feedHandler:      feedHandler,
		projectHandler:   projectHandler,
		sessionMW:        sessionMW,
	}, nil
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&user.User{},
		&guestbook.Message{},
		&feed.Post{},
		&project.Project{},
	); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

func (s *Server) Start() error {
	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped gracefully or an error occurred")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	return s.httpServer.Shutdown(ctx)
}
