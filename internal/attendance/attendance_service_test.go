package attendance_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/tzevk/accent-sub006/internal/attendance"
	attendanceerrors "github.com/tzevk/accent-sub006/internal/attendance/errors"
	"github.com/tzevk/accent-sub006/internal/salaryprofile"
)

type fakeAttendanceRepository struct {
	withTxFn                 func(tx *sql.Tx) attendance.Repository
	createFn                 func(ctx context.Context, rec *attendance.AttendanceRecord) error
	updateFn                 func(ctx context.Context, rec *attendance.AttendanceRecord) error
	findByEmployeeAndDateFn  func(ctx context.Context, employeeID string, date time.Time) (*attendance.AttendanceRecord, error)
	findByEmployeeAndRangeFn func(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceRecord, error)
	findAllByRangeFn         func(ctx context.Context, from, to time.Time) ([]attendance.AttendanceRecord, error)
}

func (f *fakeAttendanceRepository) WithTx(tx *sql.Tx) attendance.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeAttendanceRepository) Create(ctx context.Context, rec *attendance.AttendanceRecord) error {
	if f.createFn != nil {
		return f.createFn(ctx, rec)
	}
	return nil
}

func (f *fakeAttendanceRepository) Update(ctx context.Context, rec *attendance.AttendanceRecord) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, rec)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.AttendanceRecord, error) {
	if f.findByEmployeeAndDateFn != nil {
		return f.findByEmployeeAndDateFn(ctx, employeeID, date)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	if f.findByEmployeeAndRangeFn != nil {
		return f.findByEmployeeAndRangeFn(ctx, employeeID, from, to)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindAllByRange(ctx context.Context, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	if f.findAllByRangeFn != nil {
		return f.findAllByRangeFn(ctx, from, to)
	}
	return nil, nil
}

type fakeProfileSource struct {
	activeAsOfFn func(ctx context.Context, employeeID string, date time.Time) (*salaryprofile.SalaryProfile, error)
}

func (f *fakeProfileSource) ActiveAsOf(ctx context.Context, employeeID string, date time.Time) (*salaryprofile.SalaryProfile, error) {
	if f.activeAsOfFn != nil {
		return f.activeAsOfFn(ctx, employeeID, date)
	}
	return nil, gorm.ErrRecordNotFound
}

type attendanceServiceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  attendance.Service
	repo     *fakeAttendanceRepository
	profiles *fakeProfileSource
}

func setupAttendanceServiceTest(t *testing.T) *attendanceServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeAttendanceRepository{}
	profiles := &fakeProfileSource{}
	svc := attendance.NewService(db, repo, profiles)

	return &attendanceServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo, profiles: profiles}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func records(employeeID uuid.UUID, statuses ...string) []attendance.AttendanceRecord {
	rows := make([]attendance.AttendanceRecord, len(statuses))
	for i, status := range statuses {
		rows[i] = attendance.AttendanceRecord{
			ID:             uuid.New(),
			EmployeeID:     employeeID,
			AttendanceDate: day(i + 1),
			Status:         status,
		}
	}
	return rows
}

func TestAttendanceService_RecordDay_CreatesNewRecord(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	var created *attendance.AttendanceRecord
	deps.repo.createFn = func(ctx context.Context, rec *attendance.AttendanceRecord) error {
		created = rec
		return nil
	}

	resp, err := deps.service.RecordDay(ctx, attendance.RecordDayRequest{
		EmployeeID:     employeeID,
		AttendanceDate: "2026-03-02",
		Status:         attendance.StatusOvertime,
		OvertimeHours:  2.5,
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, attendance.StatusOvertime, resp.Status)
	assert.Equal(t, 2.5, resp.OvertimeHours)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_RecordDay_UpdatesExistingRecord(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	existing := &attendance.AttendanceRecord{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		AttendanceDate: day(2),
		Status:         attendance.StatusPresent,
	}
	deps.repo.findByEmployeeAndDateFn = func(ctx context.Context, id string, date time.Time) (*attendance.AttendanceRecord, error) {
		return existing, nil
	}

	var updated *attendance.AttendanceRecord
	deps.repo.updateFn = func(ctx context.Context, rec *attendance.AttendanceRecord) error {
		updated = rec
		return nil
	}

	resp, err := deps.service.RecordDay(ctx, attendance.RecordDayRequest{
		EmployeeID:     employeeID.String(),
		AttendanceDate: "2026-03-02",
		Status:         attendance.StatusSickLeave,
	})

	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, existing.ID.String(), resp.ID)
	assert.Equal(t, attendance.StatusSickLeave, resp.Status)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_RecordDay_RejectsBadInput(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid employee id", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		_, err := deps.service.RecordDay(ctx, attendance.RecordDayRequest{
			EmployeeID:     "not-a-uuid",
			AttendanceDate: "2026-03-02",
			Status:         attendance.StatusPresent,
		})
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidEmployeeID)
	})

	t.Run("negative overtime", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		_, err := deps.service.RecordDay(ctx, attendance.RecordDayRequest{
			EmployeeID:     uuid.New().String(),
			AttendanceDate: "2026-03-02",
			Status:         attendance.StatusOvertime,
			OvertimeHours:  -1,
		})
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidOvertimeHours)
	})
}

func TestAttendanceService_Summarize_Buckets(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	rows := records(employeeID,
		attendance.StatusPresent,
		attendance.StatusOvertime,
		attendance.StatusPaidLeave,
		attendance.StatusSickLeave,
		attendance.StatusCasualLeave,
		attendance.StatusWeeklyOff,
		attendance.StatusHoliday,
		attendance.StatusAbsent,
		attendance.StatusHalfDay,
	)
	rows[1].OvertimeHours = 3

	deps.repo.findByEmployeeAndRangeFn = func(ctx context.Context, id string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
		return rows, nil
	}

	summary, err := deps.service.Summarize(ctx, employeeID.String(), day(1), day(31))

	assert.NoError(t, err)
	assert.Equal(t, 2.5, summary.PresentDays)
	assert.Equal(t, 3.0, summary.PaidLeaveDays)
	assert.Equal(t, 2.0, summary.WeeklyOffDays)
	assert.Equal(t, 1.5, summary.AbsentDays)
	assert.Equal(t, 3.0, summary.OvertimeHours)
	assert.Equal(t, 7.5, summary.PayableDays)
	assert.Equal(t, 1.5, summary.LOPDays)
	assert.Equal(t, salaryprofile.DefaultStandardWorkingDays, summary.StandardWorkingDays)
}

func TestAttendanceService_Summarize_PayRatio(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	statuses := make([]string, 13)
	for i := range statuses {
		statuses[i] = attendance.StatusPresent
	}
	deps.repo.findByEmployeeAndRangeFn = func(ctx context.Context, id string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
		return records(employeeID, statuses...), nil
	}

	summary, err := deps.service.Summarize(ctx, employeeID.String(), day(1), day(31))

	assert.NoError(t, err)
	assert.Equal(t, 13.0, summary.PayableDays)
	assert.InDelta(t, 0.5, summary.PayRatio, 1e-9)
}

func TestAttendanceService_Summarize_PayRatioCappedAtOne(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	// 28 payable days against a 26-day standard must not overpay.
	statuses := make([]string, 28)
	for i := range statuses {
		statuses[i] = attendance.StatusPresent
	}
	deps.repo.findByEmployeeAndRangeFn = func(ctx context.Context, id string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
		return records(employeeID, statuses...), nil
	}

	summary, err := deps.service.Summarize(ctx, employeeID.String(), day(1), day(31))

	assert.NoError(t, err)
	assert.Equal(t, 1.0, summary.PayRatio)
}

func TestAttendanceService_Summarize_NoRecords(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	summary, err := deps.service.Summarize(ctx, employeeID.String(), day(1), day(31))

	assert.NoError(t, err)
	assert.Equal(t, 0.0, summary.PayableDays)
	assert.Equal(t, 0.0, summary.PayRatio)
	assert.Equal(t, 0.0, summary.AttendancePercent)
}

func TestAttendanceService_Summarize_UsesProfileWorkingDays(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	deps.profiles.activeAsOfFn = func(ctx context.Context, id string, date time.Time) (*salaryprofile.SalaryProfile, error) {
		return &salaryprofile.SalaryProfile{
			ID:                  uuid.New(),
			EmployeeID:          employeeID,
			StandardWorkingDays: 22,
		}, nil
	}
	deps.repo.findByEmployeeAndRangeFn = func(ctx context.Context, id string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
		return records(employeeID, attendance.StatusPresent, attendance.StatusPresent), nil
	}

	summary, err := deps.service.Summarize(ctx, employeeID.String(), day(1), day(31))

	assert.NoError(t, err)
	assert.Equal(t, 22, summary.StandardWorkingDays)
	assert.InDelta(t, 2.0/22.0, summary.PayRatio, 1e-9)
}

func TestAttendanceService_Summarize_InvalidRange(t *testing.T) {
	ctx := context.Background()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.Summarize(ctx, uuid.New().String(), day(10), day(1))

	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateRange)
}
