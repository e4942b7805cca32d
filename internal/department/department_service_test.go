package department_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/tzevk/accent-sub006/internal/department"
	departmenterrors "github.com/tzevk/accent-sub006/internal/department/errors"
)

type fakeDepartmentRepository struct {
	withTxFn   func(tx *sql.Tx) department.Repository
	createFn   func(ctx context.Context, dept *department.Department) error
	findAllFn  func(ctx context.Context) ([]department.Department, error)
	findByIDFn func(ctx context.Context, id string) (*department.Department, error)
	updateFn   func(ctx context.Context, dept *department.Department) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeDepartmentRepository) WithTx(tx *sql.Tx) department.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeDepartmentRepository) Create(ctx context.Context, dept *department.Department) error {
	if f.createFn != nil {
		return f.createFn(ctx, dept)
	}
	return nil
}

func (f *fakeDepartmentRepository) FindAll(ctx context.Context) ([]department.Department, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeDepartmentRepository) FindByID(ctx context.Context, id string) (*department.Department, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDepartmentRepository) Update(ctx context.Context, dept *department.Department) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, dept)
	}
	return nil
}

func (f *fakeDepartmentRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type departmentServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service department.Service
	repo    *fakeDepartmentRepository
}

func setupDepartmentServiceTest(t *testing.T) *departmentServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeDepartmentRepository{}
	svc := department.NewService(db, repo)

	return &departmentServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
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

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	deps := setupDepartmentServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	var created *department.Department
	deps.repo.createFn = func(ctx context.Context, dept *department.Department) error {
		created = dept
		return nil
	}

	resp, err := deps.service.Create(ctx, department.CreateDepartmentRequest{
		Name:        "Finance",
		Description: "Payroll and accounting",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, "Finance", resp.Name)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestDepartmentService_Create_DuplicateName(t *testing.T) {
	ctx := context.Background()

	deps := setupDepartmentServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.createFn = func(ctx context.Context, dept *department.Department) error {
		return &pgconn.PgError{Code: "23505"}
	}

	_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Finance"})

	assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNameAlreadyExists)
}

func TestDepartmentService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()

	deps := setupDepartmentServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.GetByID(ctx, uuid.New().String())

	assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	deps := setupDepartmentServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	deps.repo.findByIDFn = func(ctx context.Context, got string) (*department.Department, error) {
		assert.Equal(t, id.String(), got)
		return &department.Department{ID: id, Name: "Finance"}, nil
	}

	var updated *department.Department
	deps.repo.updateFn = func(ctx context.Context, dept *department.Department) error {
		updated = dept
		return nil
	}

	resp, err := deps.service.Update(ctx, id.String(), department.UpdateDepartmentRequest{
		Name:        "Finance & Accounts",
		Description: "Renamed",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Finance & Accounts", resp.Name)
	assert.NotNil(t, updated)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()

	deps := setupDepartmentServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	deleteCalled := false
	deps.repo.deleteFn = func(ctx context.Context, id string) error {
		deleteCalled = true
		return nil
	}

	err := deps.service.Delete(ctx, uuid.New().String())

	assert.NoError(t, err)
	assert.True(t, deleteCalled)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
