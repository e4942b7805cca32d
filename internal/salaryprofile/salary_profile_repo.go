package salaryprofile

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

///go:generate mockgen -source=salary_profile_repo.go -destination=mock/salary_profile_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, profile *SalaryProfile) error
	FindAllByEmployee(ctx context.Context, employeeID string) ([]SalaryProfile, error)
	FindByID(ctx context.Context, id string) (*SalaryProfile, error)
	ActiveAsOf(ctx context.Context, employeeID string, date time.Time) (*SalaryProfile, error)
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

func (r *repository) Create(ctx context.Context, profile *SalaryProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]SalaryProfile, error) {
	var profiles []SalaryProfile
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_from DESC").
		Find(&profiles).Error
	return profiles, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryProfile, error) {
	var profile SalaryProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	return &profile, err
}

// ActiveAsOf returns the profile governing the given date: the row with the
// latest effective_from that is not after the date.
func (r *repository) ActiveAsOf(ctx context.Context, employeeID string, date time.Time) (*SalaryProfile, error) {
	var profile SalaryProfile
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("effective_from <= ?", date.Format("2006-01-02")).
		Order("effective_from DESC").
		First(&profile).Error
	return &profile, err
}
