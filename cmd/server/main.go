package main

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/afitoip/portfolio-api/internal/config"
	"github.com/afitoip/portfolio-api/internal/database"
	"github.com/afitoip/portfolio-api/internal/handler"
	"github.com/afitoip/portfolio-api/internal/middleware"
	"github.com/afitoip/portfolio-api/internal/repository"
	"github.com/afitoip/portfolio-api/internal/service"
	"github.com/afitoip/portfolio-api/pkg/logger"
)

const (
	listenMaxRetries = 5
	listenRetryDelay = 300 * time.Millisecond
)

func main() {
	cfg := config.Load()

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to connect database", zap.Error(err))
	}

	// The server must not accept traffic without a usable schema.
	if err := database.Bootstrap(db); err != nil {
		logger.Log.Fatal("Failed to bootstrap database schema", zap.Error(err))
	}
	logger.Log.Info("Database schema ensured")

	// Repositories
	profileRepo := repository.NewProfileRepository(db)
	educationRepo := repository.NewEducationRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	messageRepo := repository.NewContactMessageRepository(db)

	// Services
	authService := service.NewAuthService(cfg.AdminEmail, cfg.AdminPassword, cfg.JWTSecret, cfg.JWTExpiry)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileRepo)
	educationHandler := handler.NewEducationHandler(educationRepo)
	skillHandler := handler.NewSkillHandler(skillRepo)
	projectHandler := handler.NewProjectHandler(projectRepo)
	messageHandler := handler.NewContactMessageHandler(messageRepo)
	healthHandler := handler.NewHealthHandler(db)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(cfg.IsProduction()))

	router.GET("/health", healthHandler.Check)

	// Public routes
	router.POST("/auth/login", authHandler.Login)
	router.GET("/profiles", profileHandler.List)
	router.GET("/education", educationHandler.List)
	router.GET("/skills", skillHandler.List)
	router.GET("/projects", projectHandler.List)
	router.POST("/contact-messages", messageHandler.Create)

	// Protected routes (require bearer token)
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.PUT("/profiles/:id", profileHandler.Update)

		protected.POST("/education", educationHandler.Create)
		protected.PUT("/education/:id", educationHandler.Update)
		protected.DELETE("/education/:id", educationHandler.Delete)

		protected.POST("/skills", skillHandler.Create)
		protected.PUT("/skills/:id", skillHandler.Update)
		protected.DELETE("/skills/:id", skillHandler.Delete)

		protected.POST("/projects", projectHandler.Create)
		protected.PUT("/projects/:id", projectHandler.Update)
		protected.DELETE("/projects/:id", projectHandler.Delete)

		protected.GET("/contact-messages", messageHandler.List)
		protected.PATCH("/contact-messages/:id/read", messageHandler.MarkRead)
		protected.DELETE("/contact-messages/:id", messageHandler.Delete)
	}

	if err := listenWithRetry(router, cfg.ServerPort); err != nil {
		logger.Log.Fatal("Failed to start server", zap.Error(err))
	}
}

// listenWithRetry binds the configured port, moving to the next port on
// a bind conflict, up to listenMaxRetries attempts.
func listenWithRetry(router *gin.Engine, port int) error {
	for attempt := 0; ; attempt++ {
		p := port + attempt
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", p))
		if err != nil {
			if attempt >= listenMaxRetries {
				return fmt.Errorf("listen failed after %d attempts: %w", attempt+1, err)
			}
			logger.Log.Warn("Port in use, trying next",
				zap.Int("port", p),
				zap.Int("next", p+1),
			)
			time.Sleep(listenRetryDelay)
			continue
		}

		logger.Log.Info("Server listening", zap.Int("port", p))
		return router.RunListener(ln)
	}
}
