package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/tzevk/accent-sub006/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
	}
}
