package payroll

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/tzevk/accent-sub006/internal/middleware"
	"github.com/tzevk/accent-sub006/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware())
	{
		payslips.POST("/generate",
			middleware.RBACAuthorize(rbacService, "payroll", "create"),
			middleware.RateLimitByEmployee(0.5, 2),
			middleware.Idempotency(rdb),
			handler.Generate,
		)
		payslips.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), middleware.RateLimitByEmployee(3, 10), handler.GetAll)
		payslips.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), middleware.RateLimitByEmployee(3, 10), handler.GetById)
		payslips.GET("/:id/download", middleware.RBACAuthorize(rbacService, "payroll", "read"), middleware.RateLimitByEmployee(1, 5), handler.DownloadPayslip)
		payslips.PATCH("/:id/lifecycle", middleware.RBACAuthorize(rbacService, "payroll", "update"), middleware.RateLimitByEmployee(1, 5), handler.UpdateLifecycle)
	}
}
