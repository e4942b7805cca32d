package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/tzevk/accent-sub006/internal/attendance"
	"github.com/tzevk/accent-sub006/internal/bootstrap"
	"github.com/tzevk/accent-sub006/internal/employee"
	"github.com/tzevk/accent-sub006/internal/events"
	"github.com/tzevk/accent-sub006/internal/messaging/kafka/consumer"
	"github.com/tzevk/accent-sub006/internal/payroll"
	"github.com/tzevk/accent-sub006/internal/salaryprofile"
	"github.com/tzevk/accent-sub006/internal/schedule"
	"github.com/tzevk/accent-sub006/internal/shared/connection"
	"github.com/tzevk/accent-sub006/internal/shared/counter"
)

// RunConsumer renders payslip documents off the generated-slip stream so
// PDF work never sits on the API request path.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	salaryProfileRepo := salaryprofile.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	attendanceService := attendance.NewService(sqlDB, attendanceRepo, salaryProfileRepo)
	scheduleService := schedule.NewService(sqlDB, schedule.NewRepository(gormDB), nil)
	payrollService := payroll.NewService(
		sqlDB,
		payroll.NewRepository(gormDB),
		salaryProfileRepo,
		attendanceService,
		scheduleService,
		employee.NewRepository(gormDB),
		counter.NewRepository(gormDB),
		bootstrap.NewStdoutAuditLogger(),
		payroll.NewLocalDocumentStore(os.Getenv("PAYSLIP_DIR")),
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PayslipGeneratedTopic,
		GroupID:        "payroll-engine-payslip-docs",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayslipGenerated(ctx, reader, payrollService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
