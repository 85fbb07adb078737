package app

import (
	"fmt"
	"net/http"

	"go-ems/internal/auth"
	"go-ems/internal/config"
	"go-ems/internal/employee"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/shared/response"
	"go-ems/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
	publisher *kafka.Publisher,
	logger *zap.Logger,
) {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)

	// --- Services ---
	tokenService := token.NewService(token.Config{
		Secret: cfg.TokenSecret,
		TTL:    cfg.TokenTTL,
	})
	authService := auth.NewService(authRepo, tokenService, logger)
	employeeService := employee.NewServiceWithPublisher(employeeRepo, publisher, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)

	authGate := auth.Middleware(tokenService, authRepo)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, authGate)
		employee.RegisterRoutes(api, employeeHandler, authGate, rdb)
	}

	router.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"message": "Employee Management System API"})
	})

	// Unknown routes stay inside the envelope too.
	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound,
			fmt.Sprintf("Route %s not found", c.Request.URL.Path))
	})
}
