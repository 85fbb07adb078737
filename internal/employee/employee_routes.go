package employee

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the employee CRUD surface. Every route sits behind
// the auth gate; creation additionally takes the idempotency lock.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authMW gin.HandlerFunc,
	rdb *redis.Client,
) {
	employees := r.Group("/employees")
	employees.Use(authMW)
	{
		employees.GET("", handler.GetAll)
		employees.POST("", middleware.Idempotency(rdb), handler.Create)
		employees.GET("/:id", handler.GetByID)
		employees.PUT("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)
	}
}
