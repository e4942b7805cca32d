package salaryprofile

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
	profiles := r.Group("/salary-profiles")
	profiles.Use(middleware.AuthMiddleware())
	{
		profiles.GET("", middleware.RBACAuthorize(rbacService, "salary_profile", "read"), middleware.RateLimitByEmployee(3, 10), handler.GetAllByEmployee)
		profiles.GET("/active", middleware.RBACAuthorize(rbacService, "salary_profile", "read"), middleware.RateLimitByEmployee(3, 10), handler.GetActive)
		profiles.GET("/:id", middleware.RBACAuthorize(rbacService, "salary_profile", "read"), middleware.RateLimitByEmployee(3, 10), handler.GetByID)
		profiles.POST("", middleware.RBACAuthorize(rbacService, "salary_profile", "create"), middleware.RateLimitByEmployee(1, 5), handler.Create)
	}
}
