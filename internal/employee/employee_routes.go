package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "employee", "read"), middleware.RateLimitByEmployee(3, 10), handler.GetAll)
		employees.GET("/options", middleware.RBACAuthorize(rbacService, "employee", "read"), middleware.RateLimitByEmployee(5, 20), handler.GetOptions)
		employees.GET("/:id", middleware.RBACAuthorize(rbacService, "employee", "read"), middleware.RateLimitByEmployee(3, 10), handler.GetByID)
		employees.POST("", middleware.RBACAuthorize(rbacService, "employee", "create"), middleware.RateLimitByEmployee(1, 5), handler.Create)
		employees.PUT("/:id/status", middleware.RBACAuthorize(rbacService, "employee", "update"), middleware.RateLimitByEmployee(0.5, 2), handler.UpdateStatus)
	}
}
