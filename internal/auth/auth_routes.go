package auth

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", middleware.RateLimitByIP(0.5, 3), handler.Register)
		authGroup.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
		authGroup.GET("/me", authMW, handler.Me)
	}
}
