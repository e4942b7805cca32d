package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	scheduleerrors "github.com/tzevk/accent-sub006/internal/schedule/errors"
)

const activeSetCacheTTL = 5 * time.Minute

func activeSetCacheKey(date time.Time) string {
	return "schedules:active:" + date.Format("2006-01-02")
}

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	Resolve(ctx context.Context, date time.Time, gross int64) (map[string]ResolvedComponent, error)
	Create(ctx context.Context, req CreateScheduleComponentRequest) (ScheduleComponentResponse, error)
	GetAll(ctx context.Context) ([]ScheduleComponentResponse, error)
	Retire(ctx context.Context, id string, req RetireScheduleComponentRequest) (ScheduleComponentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// Resolve selects the active value of every component for the date and
// converts it into an amount against the gross salary. Deterministic for a
// fixed (date, gross, table state).
func (s *service) Resolve(ctx context.Context, date time.Time, gross int64) (map[string]ResolvedComponent, error) {
	if gross < 0 {
		return nil, scheduleerrors.ErrInvalidGrossSalary
	}

	components, err := s.activeSet(ctx, date)
	if err != nil {
		return nil, err
	}

	return s.resolveSet(components, gross), nil
}

// activeSet loads the effective component rows for a date, going through a
// short-lived Redis cache. The schedule table is read for every employee in
// a batch run; singleflight keeps concurrent misses to one query.
func (s *service) activeSet(ctx context.Context, date time.Time) ([]ScheduleComponent, error) {
	if s.rdb == nil {
		return s.repo.ActiveOn(ctx, date)
	}

	key := activeSetCacheKey(date)

	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var components []ScheduleComponent
		if err := json.Unmarshal([]byte(cached), &components); err == nil {
			return components, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		components, err := s.repo.ActiveOn(ctx, date)
		if err != nil {
			return nil, err
		}

		if payload, marshalErr := json.Marshal(components); marshalErr == nil {
			_ = s.rdb.Set(ctx, key, payload, activeSetCacheTTL).Err()
		}

		return components, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]ScheduleComponent), nil
}

func (s *service) resolveSet(components []ScheduleComponent, gross int64) map[string]ResolvedComponent {
	byType := make(map[string][]ScheduleComponent)
	for _, c := range components {
		byType[c.ComponentType] = append(byType[c.ComponentType], c)
	}

	resolved := make(map[string]ResolvedComponent, len(byType))
	for componentType, rows := range byType {
		selected, ok := selectRow(rows, gross)
		if !ok {
			// Slab component with no band containing the gross; omitted,
			// which downstream treats as zero.
			continue
		}

		if len(rows) > 1 && !selected.isSlab() {
			s.logger.Warn("overlapping schedule rows, latest effective_from wins",
				zap.String("component_type", componentType),
				zap.Int("rows", len(rows)),
				zap.String("selected_id", selected.ID.String()),
			)
		}

		resolved[componentType] = ResolvedComponent{
			ValueType: selected.ValueType,
			Value:     selected.Value,
			Amount:    componentAmount(selected, gross),
		}
	}

	return resolved
}

// selectRow picks the row governing a gross salary: slab rows must contain
// the gross; duplicate non-slab rows fall back to latest effective_from.
func selectRow(rows []ScheduleComponent, gross int64) (ScheduleComponent, bool) {
	var selected ScheduleComponent
	found := false

	for _, row := range rows {
		if row.isSlab() && (gross < *row.MinSalary || gross > *row.MaxSalary) {
			continue
		}
		if !found || row.EffectiveFrom.After(selected.EffectiveFrom) {
			selected = row
			found = true
		}
	}

	return selected, found
}

func componentAmount(c ScheduleComponent, gross int64) int64 {
	if c.ValueType == ValuePercentage {
		return RoundHalfUp(float64(gross) * c.Value / 100)
	}
	return RoundHalfUp(c.Value)
}

func (s *service) Create(ctx context.Context, req CreateScheduleComponentRequest) (ScheduleComponentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ScheduleComponentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	effectiveFrom, err := time.Parse("2006-01-02", req.EffectiveFrom)
	if err != nil {
		return ScheduleComponentResponse{}, scheduleerrors.ErrInvalidDateFormat
	}

	var effectiveTo *time.Time
	if req.EffectiveTo != nil && *req.EffectiveTo != "" {
		parsed, err := time.Parse("2006-01-02", *req.EffectiveTo)
		if err != nil {
			return ScheduleComponentResponse{}, scheduleerrors.ErrInvalidDateFormat
		}
		effectiveTo = &parsed
	}

	if (req.MinSalary == nil) != (req.MaxSalary == nil) {
		return ScheduleComponentResponse{}, scheduleerrors.ErrInvalidSlabRange
	}
	if req.MinSalary != nil && *req.MinSalary > *req.MaxSalary {
		return ScheduleComponentResponse{}, scheduleerrors.ErrInvalidSlabRange
	}

	if req.MinSalary != nil {
		existing, err := qtx.ActiveOn(ctx, effectiveFrom)
		if err != nil {
			return ScheduleComponentResponse{}, err
		}
		for _, row := range existing {
			if row.ComponentType != req.ComponentType || !row.isSlab() {
				continue
			}
			if *req.MinSalary <= *row.MaxSalary && *req.MaxSalary >= *row.MinSalary {
				return ScheduleComponentResponse{}, scheduleerrors.ErrOverlappingSlab
			}
		}
	}

	component := &ScheduleComponent{
		ID:            uuid.New(),
		ComponentType: req.ComponentType,
		ValueType:     req.ValueType,
		Value:         req.Value,
		MinSalary:     req.MinSalary,
		MaxSalary:     req.MaxSalary,
		EffectiveFrom: effectiveFrom,
		EffectiveTo:   effectiveTo,
		IsActive:      true,
	}

	if err := qtx.Create(ctx, component); err != nil {
		return ScheduleComponentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ScheduleComponentResponse{}, err
	}

	return mapToResponse(*component), nil
}

func (s *service) GetAll(ctx context.Context) ([]ScheduleComponentResponse, error) {
	components, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]ScheduleComponentResponse, len(components))
	for i, c := range components {
		res[i] = mapToResponse(c)
	}
	return res, nil
}

// Retire closes a component's validity window instead of deleting it, so
// historical slips remain reproducible against the table.
func (s *service) Retire(ctx context.Context, id string, req RetireScheduleComponentRequest) (ScheduleComponentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ScheduleComponentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	effectiveTo, err := time.Parse("2006-01-02", req.EffectiveTo)
	if err != nil {
		return ScheduleComponentResponse{}, scheduleerrors.ErrInvalidDateFormat
	}

	component, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ScheduleComponentResponse{}, err
	}

	if !component.IsActive {
		return ScheduleComponentResponse{}, scheduleerrors.ErrAlreadyRetired
	}

	component.EffectiveTo = &effectiveTo
	component.IsActive = false

	if err := qtx.Update(ctx, component); err != nil {
		return ScheduleComponentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ScheduleComponentResponse{}, err
	}

	return mapToResponse(*component), nil
}

func mapToResponse(c ScheduleComponent) ScheduleComponentResponse {
	resp := ScheduleComponentResponse{
		ID:            c.ID.String(),
		ComponentType: c.ComponentType,
		ValueType:     c.ValueType,
		Value:         c.Value,
		MinSalary:     c.MinSalary,
		MaxSalary:     c.MaxSalary,
		EffectiveFrom: c.EffectiveFrom.Format("2006-01-02"),
		IsActive:      c.IsActive,
	}
	if c.EffectiveTo != nil {
		v := c.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &v
	}
	return resp
}
