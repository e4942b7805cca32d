package schedule

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, component *ScheduleComponent) error
	Update(ctx context.Context, component *ScheduleComponent) error
	FindByID(ctx context.Context, id string) (*ScheduleComponent, error)
	FindAll(ctx context.Context) ([]ScheduleComponent, error)
	ActiveOn(ctx context.Context, date time.Time) ([]ScheduleComponent, error)
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

func (r *repository) Create(ctx context.Context, component *ScheduleComponent) error {
	return r.db.WithContext(ctx).Create(component).Error
}

func (r *repository) Update(ctx context.Context, component *ScheduleComponent) error {
	return r.db.WithContext(ctx).Save(component).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*ScheduleComponent, error) {
	var component ScheduleComponent
	err := r.db.WithContext(ctx).First(&component, "id = ?", id).Error
	return &component, err
}

func (r *repository) FindAll(ctx context.Context) ([]ScheduleComponent, error) {
	var components []ScheduleComponent
	err := r.db.WithContext(ctx).
		Order("component_type ASC, effective_from DESC").
		Find(&components).Error
	return components, err
}

func (r *repository) ActiveOn(ctx context.Context, date time.Time) ([]ScheduleComponent, error) {
	day := date.Format("2006-01-02")

	var components []ScheduleComponent
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("effective_from <= ?", day).
		Where("effective_to IS NULL OR effective_to >= ?", day).
		Find(&components).Error
	return components, err
}
