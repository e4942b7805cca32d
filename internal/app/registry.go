package app

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tzevk/accent-sub006/internal/attendance"
	"github.com/tzevk/accent-sub006/internal/auth"
	"github.com/tzevk/accent-sub006/internal/bootstrap"
	"github.com/tzevk/accent-sub006/internal/department"
	"github.com/tzevk/accent-sub006/internal/employee"
	"github.com/tzevk/accent-sub006/internal/messaging/kafka"
	"github.com/tzevk/accent-sub006/internal/payroll"
	"github.com/tzevk/accent-sub006/internal/rbac"
	"github.com/tzevk/accent-sub006/internal/rbac/infra"
	"github.com/tzevk/accent-sub006/internal/salaryprofile"
	"github.com/tzevk/accent-sub006/internal/schedule"
	"github.com/tzevk/accent-sub006/internal/shared/counter"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	salaryProfileRepo := salaryprofile.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	auditLogger := bootstrap.NewStdoutAuditLogger()
	documentStore := payroll.NewLocalDocumentStore(os.Getenv("PAYSLIP_DIR"))

	authService := auth.NewService(authRepo)
	departmentService := department.NewService(db, departmentRepo)
	employeeService := employee.NewService(db, employeeRepo, rdb)
	salaryProfileService := salaryprofile.NewService(db, salaryProfileRepo)
	attendanceService := attendance.NewService(db, attendanceRepo, salaryProfileRepo)
	scheduleService := schedule.NewService(db, scheduleRepo, rdb)
	payrollService := payroll.NewServiceWithOutbox(
		db,
		payrollRepo,
		salaryProfileRepo,
		attendanceService,
		scheduleService,
		employeeRepo,
		counterRepo,
		outboxRepo,
		auditLogger,
		documentStore,
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	salaryProfileHandler := salaryprofile.NewHandler(salaryProfileService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	scheduleHandler := schedule.NewHandler(scheduleService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		salaryprofile.RegisterRoutes(api, salaryProfileHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		schedule.RegisterRoutes(api, scheduleHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
	}

	return nil
}
