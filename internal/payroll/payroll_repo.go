package payroll

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// ListFilter narrows slip listings. Zero values match everything.
type ListFilter struct {
	EmployeeID string
	Month      string
	Status     string
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, slip *PayrollSlip) error
	Update(ctx context.Context, slip *PayrollSlip) error
	FindByID(ctx context.Context, id string) (*PayrollSlip, error)
	FindByEmployeeAndMonth(ctx context.Context, employeeID, month string) (*PayrollSlip, error)
	FindAll(ctx context.Context, filter ListFilter) ([]PayrollSlip, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, slip *PayrollSlip) error {
	return r.db.WithContext(ctx).Create(slip).Error
}

func (r *repository) Update(ctx context.Context, slip *PayrollSlip) error {
	return r.db.WithContext(ctx).Save(slip).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*PayrollSlip, error) {
	var slip PayrollSlip
	err := r.db.WithContext(ctx).First(&slip, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &slip, nil
}

func (r *repository) FindByEmployeeAndMonth(ctx context.Context, employeeID, month string) (*PayrollSlip, error) {
	var slip PayrollSlip
	err := r.db.WithContext(ctx).
		First(&slip, "employee_id = ? AND month = ?", employeeID, month).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &slip, nil
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]PayrollSlip, error) {
	query := r.db.WithContext(ctx).Model(&PayrollSlip{})
	if filter.EmployeeID != "" {
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Month != "" {
		query = query.Where("month = ?", filter.Month)
	}
	if filter.Status != "" {
		query = query.Where("payment_status = ?", filter.Status)
	}

	var slips []PayrollSlip
	err := query.Order("month DESC, created_at DESC").Find(&slips).Error
	return slips, err
}
