package schedule

import (
	"github.com/gin-gonic/gin"

	"github.com/tzevk/accent-sub006/internal/middleware"
	"github.com/tzevk/accent-sub006/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	schedules := r.Group("/schedules")
	schedules.Use(middleware.AuthMiddleware())
	{
		schedules.GET("/current", middleware.RBACAuthorize(rbacService, "schedule", "read"), middleware.RateLimitByEmployee(3, 10), handler.GetCurrent)
		schedules.GET("", middleware.RBACAuthorize(rbacService, "schedule", "read"), middleware.RateLimitByEmployee(3, 10), handler.GetAll)
		schedules.POST("", middleware.RBACAuthorize(rbacService, "schedule", "create"), middleware.RateLimitByEmployee(0.5, 2), handler.Create)
		schedules.POST("/:id/retire", middleware.RBACAuthorize(rbacService, "schedule", "update"), middleware.RateLimitByEmployee(0.5, 2), handler.Retire)
	}
}
