package salaryprofile_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/tzevk/accent-sub006/internal/salaryprofile"
	salaryprofileerrors "github.com/tzevk/accent-sub006/internal/salaryprofile/errors"
)

type fakeProfileRepository struct {
	withTxFn            func(tx *sql.Tx) salaryprofile.Repository
	createFn            func(ctx context.Context, profile *salaryprofile.SalaryProfile) error
	findAllByEmployeeFn func(ctx context.Context, employeeID string) ([]salaryprofile.SalaryProfile, error)
	findByIDFn          func(ctx context.Context, id string) (*salaryprofile.SalaryProfile, error)
	activeAsOfFn        func(ctx context.Context, employeeID string, date time.Time) (*salaryprofile.SalaryProfile, error)
}

func (f *fakeProfileRepository) WithTx(tx *sql.Tx) salaryprofile.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeProfileRepository) Create(ctx context.Context, profile *salaryprofile.SalaryProfile) error {
	if f.createFn != nil {
		return f.createFn(ctx, profile)
	}
	return nil
}

func (f *fakeProfileRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]salaryprofile.SalaryProfile, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeProfileRepository) FindByID(ctx context.Context, id string) (*salaryprofile.SalaryProfile, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, sql.ErrNoRows
}

func (f *fakeProfileRepository) ActiveAsOf(ctx context.Context, employeeID string, date time.Time) (*salaryprofile.SalaryProfile, error) {
	if f.activeAsOfFn != nil {
		return f.activeAsOfFn(ctx, employeeID, date)
	}
	return nil, sql.ErrNoRows
}

type profileServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service salaryprofile.Service
	repo    *fakeProfileRepository
}

func setupProfileServiceTest(t *testing.T) *profileServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeProfileRepository{}
	svc := salaryprofile.NewService(db, repo)

	return &profileServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
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

func TestSalaryProfileService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	deps := setupProfileServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	var created *salaryprofile.SalaryProfile
	deps.repo.createFn = func(ctx context.Context, profile *salaryprofile.SalaryProfile) error {
		created = profile
		return nil
	}

	resp, err := deps.service.Create(ctx, salaryprofile.CreateSalaryProfileRequest{
		EmployeeID:    employeeID,
		EffectiveFrom: "2026-01-01",
		Basic:         26000,
		HRA:           5200,
		Allowances:    2600,
		OvertimeRate:  200,
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, int64(26000), resp.Basic)
	// Unset working days fall back to the documented default.
	assert.Equal(t, salaryprofile.DefaultStandardWorkingDays, resp.StandardWorkingDays)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSalaryProfileService_Create_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid employee id", func(t *testing.T) {
		deps := setupProfileServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		_, err := deps.service.Create(ctx, salaryprofile.CreateSalaryProfileRequest{
			EmployeeID:    "nope",
			EffectiveFrom: "2026-01-01",
			Basic:         26000,
		})
		assert.ErrorIs(t, err, salaryprofileerrors.ErrInvalidEmployeeID)
	})

	t.Run("negative amount", func(t *testing.T) {
		deps := setupProfileServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		_, err := deps.service.Create(ctx, salaryprofile.CreateSalaryProfileRequest{
			EmployeeID:    uuid.New().String(),
			EffectiveFrom: "2026-01-01",
			Basic:         26000,
			HRA:           -1,
		})
		assert.ErrorIs(t, err, salaryprofileerrors.ErrNegativeAmount)
	})
}

func TestSalaryProfileService_Create_DuplicateEffectiveDate(t *testing.T) {
	ctx := context.Background()

	deps := setupProfileServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.createFn = func(ctx context.Context, profile *salaryprofile.SalaryProfile) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_salary_profiles_employee_effective"}
	}

	_, err := deps.service.Create(ctx, salaryprofile.CreateSalaryProfileRequest{
		EmployeeID:    uuid.New().String(),
		EffectiveFrom: "2026-01-01",
		Basic:         26000,
	})

	assert.ErrorIs(t, err, salaryprofileerrors.ErrProfileEffectiveDateAlreadyExists)
}

func TestSalaryProfileService_GetActiveAsOf(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupProfileServiceTest(t)
	defer deps.db.Close()

	deps.repo.activeAsOfFn = func(ctx context.Context, id string, date time.Time) (*salaryprofile.SalaryProfile, error) {
		return &salaryprofile.SalaryProfile{
			ID:            uuid.New(),
			EmployeeID:    employeeID,
			EffectiveFrom: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Basic:         30000,
		}, nil
	}

	resp, err := deps.service.GetActiveAsOf(ctx, employeeID.String(), time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.Equal(t, int64(30000), resp.Basic)
	assert.Equal(t, "2026-01-01", resp.EffectiveFrom)
}
