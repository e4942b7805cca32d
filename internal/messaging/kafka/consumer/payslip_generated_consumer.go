package consumer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/tzevk/accent-sub006/internal/events"
	"github.com/tzevk/accent-sub006/internal/payroll"
)

func ConsumePayslipGenerated(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_generated")
	log.Info("payslip generated consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payslip generated consumer stopped")
				return
			}
			log.Error("fetch payslip generated message failed", zap.Error(err))
			continue
		}

		var event events.PayslipGeneratedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payslip generated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = payrollService.GeneratePayslipDocument(ctx, event.SlipID)
		if err != nil {
			log.Error("generate payslip document failed",
				zap.String("slip_id", event.SlipID),
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payslip generated message failed", zap.Error(err))
			continue
		}

		log.Info("payslip document generated",
			zap.String("slip_id", event.SlipID),
			zap.String("employee_id", event.EmployeeID),
			zap.String("month", event.Month),
		)
	}
}
