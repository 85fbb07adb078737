package app

import (
	"net/http"

	"go-ems/internal/auth"
	"go-ems/internal/config"
	"go-ems/internal/employee"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/middleware"
	"go-ems/internal/shared/connection"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure and modules onto the router. Redis and Kafka
// are optional: when unconfigured the app runs without the idempotency lock
// and without lifecycle events.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) error {
	db, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		5,
	)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&auth.User{}, &employee.Employee{}); err != nil {
		return err
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return err
		}
	}

	var publisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = kafka.NewPublisher(cfg.KafkaBrokers, logger)
	}

	router.Use(middleware.ContextLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered", zap.Any("panic", recovered))
		response.Error(c, http.StatusInternalServerError, "Server Error")
	}))

	registerModules(router, cfg, db, rdb, publisher, logger)

	return nil
}
