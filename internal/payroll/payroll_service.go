package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tzevk/accent-sub006/internal/attendance"
	"github.com/tzevk/accent-sub006/internal/bootstrap"
	"github.com/tzevk/accent-sub006/internal/employee"
	"github.com/tzevk/accent-sub006/internal/events"
	"github.com/tzevk/accent-sub006/internal/messaging/kafka"
	payrollerrors "github.com/tzevk/accent-sub006/internal/payroll/errors"
	"github.com/tzevk/accent-sub006/internal/salaryprofile"
	"github.com/tzevk/accent-sub006/internal/schedule"
	"github.com/tzevk/accent-sub006/internal/shared/contextutil"
	"github.com/tzevk/accent-sub006/internal/shared/counter"
)

// AttendanceSource supplies the payable-day summary for one month.
// Satisfied by attendance.Service.
type AttendanceSource interface {
	Summarize(ctx context.Context, employeeID string, from, to time.Time) (attendance.Summary, error)
}

// ComponentSource resolves the statutory schedule at a date and gross.
// Satisfied by schedule.Service.
type ComponentSource interface {
	Resolve(ctx context.Context, date time.Time, gross int64) (map[string]schedule.ResolvedComponent, error)
}

// ProfileSource supplies the effective salary profile.
// Satisfied by salaryprofile.Repository.
type ProfileSource interface {
	ActiveAsOf(ctx context.Context, employeeID string, date time.Time) (*salaryprofile.SalaryProfile, error)
}

// EmployeeSource lists employees eligible for a batch run.
// Satisfied by employee.Repository.
type EmployeeSource interface {
	FindAllActive(ctx context.Context) ([]employee.Employee, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Preview(ctx context.Context, employeeID, month string) (PreviewResponse, error)
	Generate(ctx context.Context, actorID string, req GeneratePayslipRequest) (PayslipResponse, error)
	GenerateAll(ctx context.Context, actorID, month string) (BatchGenerateResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]PayslipResponse, error)
	GetByID(ctx context.Context, id string) (PayslipResponse, error)
	UpdateLifecycle(ctx context.Context, actorID, id string, req UpdateLifecycleRequest) (PayslipResponse, error)
	GeneratePayslipDocument(ctx context.Context, slipID string) (PayslipResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	profiles   ProfileSource
	attendance AttendanceSource
	components ComponentSource
	employees  EmployeeSource
	counter    counter.Repository
	outbox     kafka.OutboxRepository
	audit      bootstrap.AuditLogger
	docs       DocumentStore
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	profiles ProfileSource,
	attendanceSource AttendanceSource,
	components ComponentSource,
	employees EmployeeSource,
	counterRepo counter.Repository,
	audit bootstrap.AuditLogger,
	docs DocumentStore,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, profiles, attendanceSource, components, employees, counterRepo, nil, audit, docs, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	profiles ProfileSource,
	attendanceSource AttendanceSource,
	components ComponentSource,
	employees EmployeeSource,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	audit bootstrap.AuditLogger,
	docs DocumentStore,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		profiles:   profiles,
		attendance: attendanceSource,
		components: components,
		employees:  employees,
		counter:    counterRepo,
		outbox:     outboxRepo,
		audit:      audit,
		docs:       docs,
		logger:     l,
	}
}

func (s *service) Preview(ctx context.Context, employeeID, month string) (PreviewResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return PreviewResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	from, to, err := monthRange(month)
	if err != nil {
		return PreviewResponse{}, err
	}

	breakdown, _, err := s.buildBreakdown(ctx, employeeID, from, to)
	if err != nil {
		return PreviewResponse{}, err
	}

	return PreviewResponse{
		EmployeeID: employeeID,
		Month:      month,
		Breakdown:  breakdown,
	}, nil
}

func (s *service) Generate(ctx context.Context, actorID string, req GeneratePayslipRequest) (PayslipResponse, error) {
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	return s.generateOne(ctx, actorID, req.EmployeeID, req.Month)
}

// generateOne runs the calculation and persists the slip plus its outbox
// event in one transaction. The check-then-insert inside the transaction
// plus the unique (employee, month) index makes generation idempotent.
func (s *service) generateOne(ctx context.Context, actorID, employeeID, month string) (PayslipResponse, error) {
	from, to, err := monthRange(month)
	if err != nil {
		return PayslipResponse{}, err
	}

	breakdown, _, err := s.buildBreakdown(ctx, employeeID, from, to)
	if err != nil {
		return PayslipResponse{}, err
	}

	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayslipResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return PayslipResponse{}, err
	}
	if existing != nil {
		return PayslipResponse{}, payrollerrors.ErrSlipAlreadyExists
	}

	seq, err := s.counter.GetNextValue(ctx, counter.TypePayslip)
	if err != nil {
		return PayslipResponse{}, err
	}

	payload, err := json.Marshal(breakdown)
	if err != nil {
		return PayslipResponse{}, err
	}

	generatedBy := uuid.Nil
	if parsed, err := uuid.Parse(actorID); err == nil {
		generatedBy = parsed
	}

	slip := &PayrollSlip{
		ID:              uuid.New(),
		SlipNumber:      formatSlipNumber(month, seq),
		EmployeeID:      uuid.MustParse(employeeID),
		Month:           month,
		GrossSalary:     breakdown.GrossSalary,
		TotalDeductions: breakdown.TotalDeductions,
		NetSalary:       breakdown.NetSalary,
		Breakdown:       payload,
		PaymentStatus:   StatusPending,
		GeneratedBy:     generatedBy,
	}

	if err := qtx.Create(ctx, slip); err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.PayslipGeneratedEvent{
			EventType:   "payroll.payslip.generated",
			SlipID:      slip.ID.String(),
			EmployeeID:  employeeID,
			Month:       month,
			NetSalary:   slip.NetSalary,
			GeneratedBy: actorID,
			OccurredAt:  time.Now().UTC(),
		}
		eventPayload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal payslip event failed", zap.String("request_id", rid), zap.Error(err))
			return PayslipResponse{}, err
		}

		outboxTx := s.outbox.WithTx(tx)
		if err := outboxTx.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payroll_slip",
			AggregateID:   slip.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PayslipGeneratedTopic,
			Payload:       eventPayload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return PayslipResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}

	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "payroll.slip.generated",
			Message: "payslip generated",
			Meta: map[string]any{
				"slip_id":     slip.ID.String(),
				"slip_number": slip.SlipNumber,
				"employee_id": employeeID,
				"month":       month,
				"net_salary":  slip.NetSalary,
				"actor_id":    actorID,
				"warnings":    breakdown.Warnings,
			},
		})
	}

	s.logger.Info("payslip generated",
		zap.String("request_id", rid),
		zap.String("slip_id", slip.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("month", month),
		zap.Int64("net_salary", slip.NetSalary),
		zap.Strings("warnings", breakdown.Warnings),
	)

	return mapToResponse(*slip), nil
}

func (s *service) GenerateAll(ctx context.Context, actorID, month string) (BatchGenerateResponse, error) {
	if _, _, err := monthRange(month); err != nil {
		return BatchGenerateResponse{}, err
	}

	employees, err := s.employees.FindAllActive(ctx)
	if err != nil {
		return BatchGenerateResponse{}, err
	}

	result := BatchGenerateResponse{
		Month:    month,
		Outcomes: make([]BatchOutcome, 0, len(employees)),
	}

	// One employee's failure never aborts the rest of the run.
	for _, emp := range employees {
		employeeID := emp.ID.String()

		resp, err := s.generateOne(ctx, actorID, employeeID, month)
		switch {
		case err == nil:
			result.Created++
			result.Outcomes = append(result.Outcomes, BatchOutcome{
				EmployeeID: employeeID,
				Outcome:    OutcomeCreated,
				Slip:       &resp,
			})
		case errors.Is(err, payrollerrors.ErrSlipAlreadyExists):
			result.Skipped++
			result.Outcomes = append(result.Outcomes, BatchOutcome{
				EmployeeID: employeeID,
				Outcome:    OutcomeSkipped,
				Reason:     "slip already exists",
			})
		default:
			result.Failed++
			result.Outcomes = append(result.Outcomes, BatchOutcome{
				EmployeeID: employeeID,
				Outcome:    OutcomeFailed,
				Reason:     err.Error(),
			})
			s.logger.Warn("batch payslip generation failed for employee",
				zap.String("employee_id", employeeID),
				zap.String("month", month),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("batch payslip run finished",
		zap.String("month", month),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)

	return result, nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]PayslipResponse, error) {
	slips, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(slips), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayslipResponse, error) {
	slip, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PayslipResponse{}, payrollerrors.ErrSlipNotFound
	}
	if err != nil {
		return PayslipResponse{}, err
	}
	return mapToResponse(*slip), nil
}

// UpdateLifecycle moves a slip between payment statuses. Transitions are
// deliberately permissive; every change lands in the audit log so finance
// can reconstruct who moved what.
func (s *service) UpdateLifecycle(ctx context.Context, actorID, id string, req UpdateLifecycleRequest) (PayslipResponse, error) {
	if !isValidStatus(req.Status) {
		return PayslipResponse{}, payrollerrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayslipResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	slip, err := qtx.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PayslipResponse{}, payrollerrors.ErrSlipNotFound
	}
	if err != nil {
		return PayslipResponse{}, err
	}

	previousStatus := slip.PaymentStatus

	if req.PaymentDate != nil && *req.PaymentDate != "" {
		paymentDate, err := time.Parse("2006-01-02", *req.PaymentDate)
		if err != nil {
			return PayslipResponse{}, payrollerrors.ErrInvalidDateFormat
		}
		slip.PaymentDate = &paymentDate
	}
	if req.PaymentReference != nil {
		slip.PaymentReference = req.PaymentReference
	}
	if req.Remarks != nil {
		slip.Remarks = req.Remarks
	}

	if req.Status == StatusPaid && slip.PaymentDate == nil {
		return PayslipResponse{}, payrollerrors.ErrPaymentDateRequired
	}

	slip.PaymentStatus = req.Status

	if err := qtx.Update(ctx, slip); err != nil {
		return PayslipResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayslipResponse{}, err
	}

	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "payroll.lifecycle.updated",
			Message: fmt.Sprintf("payment status %s -> %s", previousStatus, req.Status),
			Meta: map[string]any{
				"slip_id":     slip.ID.String(),
				"employee_id": slip.EmployeeID.String(),
				"month":       slip.Month,
				"from":        previousStatus,
				"to":          req.Status,
				"actor_id":    actorID,
			},
		})
	}

	return mapToResponse(*slip), nil
}

// GeneratePayslipDocument renders and stores the slip's PDF, then records
// the document location. Re-running overwrites the document and is safe.
func (s *service) GeneratePayslipDocument(ctx context.Context, slipID string) (PayslipResponse, error) {
	slip, err := s.repo.FindByID(ctx, slipID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PayslipResponse{}, payrollerrors.ErrSlipNotFound
	}
	if err != nil {
		return PayslipResponse{}, err
	}

	var breakdown Breakdown
	if err := json.Unmarshal(slip.Breakdown, &breakdown); err != nil {
		return PayslipResponse{}, err
	}

	pdf, err := buildSimplePayslipPDF(payslipLines(*slip, breakdown))
	if err != nil {
		return PayslipResponse{}, err
	}

	url, err := s.docs.Store(ctx, documentName(*slip), pdf)
	if err != nil {
		return PayslipResponse{}, err
	}

	now := time.Now().UTC()
	slip.PayslipURL = &url
	slip.PayslipGeneratedAt = &now

	if err := s.repo.Update(ctx, slip); err != nil {
		return PayslipResponse{}, err
	}

	s.logger.Info("payslip document stored",
		zap.String("slip_id", slip.ID.String()),
		zap.String("url", url),
	)

	return mapToResponse(*slip), nil
}

func (s *service) buildBreakdown(ctx context.Context, employeeID string, from, to time.Time) (Breakdown, *salaryprofile.SalaryProfile, error) {
	// Schedule rows are resolved as of the last day of the month, so a
	// mid-month rule change applies to the whole month it lands in.
	resolutionDate := to

	profile, err := s.profiles.ActiveAsOf(ctx, employeeID, resolutionDate)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && profile == nil) {
		return Breakdown{}, nil, payrollerrors.ErrProfileMissing
	}
	if err != nil {
		return Breakdown{}, nil, err
	}

	summary, err := s.attendance.Summarize(ctx, employeeID, from, to)
	if err != nil {
		return Breakdown{}, nil, err
	}

	components, err := s.components.Resolve(ctx, resolutionDate, BaseGross(*profile, summary))
	if err != nil {
		return Breakdown{}, nil, err
	}

	breakdown := Calculate(CalculationInput{
		Profile:        *profile,
		Attendance:     summary,
		Components:     components,
		ResolutionDate: resolutionDate,
	})

	return breakdown, profile, nil
}

func monthRange(month string) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidMonthFormat
	}
	to := from.AddDate(0, 1, -1)
	return from, to, nil
}

func formatSlipNumber(month string, seq int64) string {
	return fmt.Sprintf("PS-%s-%05d", strings.ReplaceAll(month, "-", ""), seq)
}

func documentName(slip PayrollSlip) string {
	return fmt.Sprintf("%s_%s.pdf", slip.SlipNumber, slip.EmployeeID.String())
}
