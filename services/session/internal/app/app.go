package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"abstract-main/pkg/config"
	"abstract-main/pkg/jwt"
	"abstract-main/pkg/logger"
	"abstract-main/pkg/middleware"
	"abstract-main/pkg/queue"
	sessionHTTP "abstract-main/services/session/internal/controller/http"
	"abstract-main/services/session/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "abstract-main/services/session/docs" // Swagger docs
)

// NewRouter wires the session handlers behind the auth middleware.
// Requests are rate limited per session when redisClient is set.
func NewRouter(cfg *config.Config, log *logger.Logger, jwtService *jwt.Service, sessionUseCase usecase.SessionUseCase, redisClient *redis.Client) *gin.Engine {
	sessionHandler := sessionHTTP.NewSessionHandler(sessionUseCase, sessionHTTP.Options{
		DefaultHandle:  cfg.DefaultHandle,
		AllowedOrigins: cfg.CORSOrigins,
		EventBuffer:    cfg.EventBuffer,
	}, log)

	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowAllOrigins:  len(cfg.CORSOrigins) == 0,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	var rateLimit []gin.HandlerFunc
	if redisClient != nil {
		rateLimit = append(rateLimit, middleware.RateLimitMiddleware(redisClient, cfg.RateLimit, time.Minute))
	}

	// Public routes
	api.POST("/sessions", append(rateLimit, sessionHandler.StartSession)...)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))
	protected.Use(rateLimit...)
	{
		protected.DELETE("/sessions", sessionHandler.EndSession)
		protected.GET("/events", sessionHandler.Events)

		protected.GET("/saved/:kind", sessionHandler.ListSaved)

		protected.GET("/messages", sessionHandler.Messages)
		protected.POST("/messages", sessionHandler.SendMessage)

		protected.GET("/feed/:kind", sessionHandler.List)
		protected.GET("/feed/:kind/:id", sessionHandler.Get)
		protected.POST("/feed/:kind/:id/like", sessionHandler.ToggleLike)
		protected.POST("/feed/:kind/:id/save", sessionHandler.ToggleSave)
		protected.PUT("/feed/:kind/:id/reply-target", sessionHandler.SetReplyTarget)

		protected.GET("/feed/:kind/:id/comments", sessionHandler.Comments)
		protected.POST("/feed/:kind/:id/comments", sessionHandler.AddComment)
		protected.DELETE("/feed/:kind/:id/comments/:comment_id", sessionHandler.DeleteComment)
		protected.POST("/feed/:kind/:id/comments/:comment_id/like", sessionHandler.ToggleCommentLike)
		protected.POST("/feed/:kind/:id/comments/:comment_id/replies", sessionHandler.AddReply)
		protected.POST("/feed/:kind/:id/comments/:comment_id/replies/:index/like", sessionHandler.ToggleReplyLike)
		protected.PUT("/feed/:kind/:id/comments/:comment_id/expanded", sessionHandler.SetExpanded)
		protected.PUT("/feed/:kind/:id/comments/:comment_id/draft", sessionHandler.SetReplyDraft)
	}

	return r
}

func Run(cfg *config.Config, log *logger.Logger, redisClient *redis.Client, queueClient *queue.Client) {
	jwtService := jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.SessionTTL)

	managerCfg := usecase.ManagerConfig{
		SeedDemo:    cfg.SeedDemo,
		DemoSeed:    cfg.DemoSeed,
		IdleTimeout: cfg.SessionTTL,
	}
	if queueClient != nil {
		managerCfg.Sink = queueClient
	}

	// Sessions live in memory and are dropped on shutdown.
	manager := usecase.NewManager(managerCfg, log)
	sessionUseCase := usecase.NewSessionUseCase(manager, jwtService, log)

	r := NewRouter(cfg, log, jwtService, sessionUseCase, redisClient)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Session service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down session service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	manager.CloseAll()

	// Close RabbitMQ connection if it was initialized
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	// Close Redis connection if it was initialized
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	log.Info("Session service exited")
}
