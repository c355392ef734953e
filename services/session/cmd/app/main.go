package main

import (
	"abstract-main/pkg/cache"
	"abstract-main/pkg/config"
	"abstract-main/pkg/logger"
	"abstract-main/pkg/queue"
	sessionApp "abstract-main/services/session/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Session Preview API
// @version         1.0
// @description     Drives the in-memory feed, saved and comment stores of a session and streams their changes
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8090
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	if cfg.UsesDefaultSecret() {
		log.Warn("JWT_SECRET is not set, session tokens are signed with the default key")
	}

	var redisClient *redis.Client
	if cfg.RedisHost != "" {
		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("Failed to connect to redis: %v (continuing without rate limiting)", err)
			redisClient = nil
		}
	}

	// Mirror session changes to RabbitMQ when configured
	var queueClient *queue.Client
	if cfg.RabbitMQHost != "" {
		queueClient, err = queue.NewRabbitMQClient(cfg, log)
		if err != nil {
			log.Error("Failed to connect to RabbitMQ: %v (continuing without change feed)", err)
			queueClient = nil
		}
	}

	sessionApp.Run(cfg, log, redisClient, queueClient)
}
