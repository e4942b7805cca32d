package attendance

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
	records := r.Group("/attendance")
	records.Use(middleware.AuthMiddleware())
	{
		records.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), middleware.RateLimitByEmployee(5, 20), handler.GetAll)
		records.GET("/summary", middleware.RBACAuthorize(rbacService, "attendance", "read"), middleware.RateLimitByEmployee(3, 10), handler.GetSummary)
		records.POST("", middleware.RBACAuthorize(rbacService, "attendance", "create"), middleware.RateLimitByEmployee(3, 10), handler.RecordDay)
	}
}
