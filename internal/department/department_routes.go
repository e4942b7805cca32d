package department

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
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	{
		departments.GET("", middleware.RBACAuthorize(rbacService, "department", "read"), middleware.RateLimitByEmployee(3, 10), handler.GetAll)
		departments.GET("/:id", middleware.RBACAuthorize(rbacService, "department", "read"), middleware.RateLimitByEmployee(3, 10), handler.GetById)
		departments.POST("", middleware.RBACAuthorize(rbacService, "department", "create"), middleware.RateLimitByEmployee(1, 5), handler.Create)
		departments.PUT("/:id", middleware.RBACAuthorize(rbacService, "department", "update"), middleware.RateLimitByEmployee(0.5, 2), handler.Update)
		departments.DELETE("/:id", middleware.RBACAuthorize(rbacService, "department", "delete"), middleware.RateLimitByEmployee(0.1, 1), handler.Delete)
	}
}
