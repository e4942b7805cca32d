package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceerrors "github.com/tzevk/accent-sub006/internal/attendance/errors"
	"github.com/tzevk/accent-sub006/internal/salaryprofile"
)

// ProfileSource supplies the active salary profile so the aggregator can
// read standard working days. Satisfied by salaryprofile.Repository.
type ProfileSource interface {
	ActiveAsOf(ctx context.Context, employeeID string, date time.Time) (*salaryprofile.SalaryProfile, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	RecordDay(ctx context.Context, req RecordDayRequest) (AttendanceResponse, error)
	GetByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceResponse, error)
	Summarize(ctx context.Context, employeeID string, from, to time.Time) (Summary, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	profiles ProfileSource
}

func NewService(db *sql.DB, repo Repository, profiles ProfileSource) Service {
	return &service{db: db, repo: repo, profiles: profiles}
}

// RecordDay creates the day's record or corrects an existing one. The
// unique (employee, date) constraint backstops concurrent submissions.
func (s *service) RecordDay(ctx context.Context, req RecordDayRequest) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	date, err := time.Parse("2006-01-02", req.AttendanceDate)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}

	if req.OvertimeHours < 0 {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidOvertimeHours
	}

	existing, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	var row *AttendanceRecord
	if err == nil && existing != nil {
		existing.Status = req.Status
		existing.OvertimeHours = req.OvertimeHours
		existing.Remarks = req.Remarks
		if err := qtx.Update(ctx, existing); err != nil {
			return AttendanceResponse{}, err
		}
		row = existing
	} else {
		row = &AttendanceRecord{
			ID:             uuid.New(),
			EmployeeID:     employeeID,
			AttendanceDate: date,
			Status:         req.Status,
			OvertimeHours:  req.OvertimeHours,
			Remarks:        req.Remarks,
		}
		if err := qtx.Create(ctx, row); err != nil {
			return AttendanceResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) GetByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}
	if from.After(to) {
		return nil, attendanceerrors.ErrInvalidDateRange
	}

	rows, err := s.repo.FindByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

// Summarize reduces the period's daily records into payable-day counts.
// Zero records yield a zeroed summary, not an error; the payroll generator
// decides whether that blocks a slip.
func (s *service) Summarize(ctx context.Context, employeeID string, from, to time.Time) (Summary, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return Summary{}, attendanceerrors.ErrInvalidEmployeeID
	}
	if from.After(to) {
		return Summary{}, attendanceerrors.ErrInvalidDateRange
	}

	rows, err := s.repo.FindByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return Summary{}, err
	}

	workingDays := salaryprofile.DefaultStandardWorkingDays
	profile, err := s.profiles.ActiveAsOf(ctx, employeeID, from)
	if err == nil && profile != nil {
		workingDays = profile.WorkingDays()
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return Summary{}, err
	}

	return buildSummary(employeeID, from, to, workingDays, rows), nil
}

func buildSummary(employeeID string, from, to time.Time, workingDays int, rows []AttendanceRecord) Summary {
	summary := Summary{
		EmployeeID:          employeeID,
		From:                from,
		To:                  to,
		StandardWorkingDays: workingDays,
	}

	for _, rec := range rows {
		switch rec.Status {
		case StatusPresent, StatusOvertime:
			summary.PresentDays++
		case StatusPaidLeave, StatusSickLeave, StatusCasualLeave:
			summary.PaidLeaveDays++
		case StatusWeeklyOff, StatusHoliday:
			summary.WeeklyOffDays++
		case StatusAbsent:
			summary.AbsentDays++
		case StatusHalfDay:
			summary.PresentDays += 0.5
			summary.AbsentDays += 0.5
		}
		summary.OvertimeHours += rec.OvertimeHours
	}

	summary.PayableDays = summary.PresentDays + summary.PaidLeaveDays + summary.WeeklyOffDays
	summary.LOPDays = summary.AbsentDays

	if workingDays > 0 {
		summary.PayRatio = summary.PayableDays / float64(workingDays)
		if summary.PayRatio > 1.0 {
			summary.PayRatio = 1.0
		}
	}

	totalDays := int(to.Sub(from).Hours()/24) + 1
	denominator := float64(totalDays) - summary.WeeklyOffDays
	if denominator > 0 {
		summary.AttendancePercent = (summary.PresentDays + summary.PaidLeaveDays) / denominator * 100
	}

	return summary
}

func mapToResponse(rec AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID:             rec.ID.String(),
		EmployeeID:     rec.EmployeeID.String(),
		AttendanceDate: rec.AttendanceDate.Format("2006-01-02"),
		Status:         rec.Status,
		OvertimeHours:  rec.OvertimeHours,
		Remarks:        rec.Remarks,
	}
}
