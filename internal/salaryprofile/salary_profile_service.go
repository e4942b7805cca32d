package salaryprofile

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	salaryprofileerrors "github.com/tzevk/accent-sub006/internal/salaryprofile/errors"
)

//go:generate mockgen -source=salary_profile_service.go -destination=mock/salary_profile_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSalaryProfileRequest) (SalaryProfileResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]SalaryProfileResponse, error)
	GetByID(ctx context.Context, id string) (SalaryProfileResponse, error)
	GetActiveAsOf(ctx context.Context, employeeID string, date time.Time) (SalaryProfileResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(
	ctx context.Context,
	req CreateSalaryProfileRequest,
) (SalaryProfileResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryProfileResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return SalaryProfileResponse{}, salaryprofileerrors.ErrInvalidEmployeeID
	}

	effectiveFrom, err := time.Parse("2006-01-02", req.EffectiveFrom)
	if err != nil {
		return SalaryProfileResponse{}, salaryprofileerrors.ErrInvalidDateFormat
	}

	if req.Basic < 0 || req.HRA < 0 || req.Allowances < 0 || req.OvertimeRate < 0 {
		return SalaryProfileResponse{}, salaryprofileerrors.ErrNegativeAmount
	}

	workingDays := req.StandardWorkingDays
	if workingDays <= 0 {
		workingDays = DefaultStandardWorkingDays
	}

	profile := &SalaryProfile{
		ID:                  uuid.New(),
		EmployeeID:          employeeID,
		EffectiveFrom:       effectiveFrom,
		DAYear:              req.DAYear,
		Basic:               req.Basic,
		HRA:                 req.HRA,
		Allowances:          req.Allowances,
		OvertimeRate:        req.OvertimeRate,
		StandardWorkingDays: workingDays,
	}

	if err := qtx.Create(ctx, profile); err != nil {
		return SalaryProfileResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SalaryProfileResponse{}, err
	}

	return mapToResponse(*profile), nil
}

func (s *service) GetAllByEmployee(
	ctx context.Context,
	employeeID string,
) ([]SalaryProfileResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, salaryprofileerrors.ErrInvalidEmployeeID
	}

	profiles, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]SalaryProfileResponse, len(profiles))
	for i, p := range profiles {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) GetByID(
	ctx context.Context,
	id string,
) (SalaryProfileResponse, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SalaryProfileResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*profile), nil
}

func (s *service) GetActiveAsOf(
	ctx context.Context,
	employeeID string,
	date time.Time,
) (SalaryProfileResponse, error) {
	profile, err := s.repo.ActiveAsOf(ctx, employeeID, date)
	if err != nil {
		return SalaryProfileResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*profile), nil
}

func mapToResponse(profile SalaryProfile) SalaryProfileResponse {
	return SalaryProfileResponse{
		ID:                  profile.ID.String(),
		EmployeeID:          profile.EmployeeID.String(),
		EffectiveFrom:       profile.EffectiveFrom.Format("2006-01-02"),
		DAYear:              profile.DAYear,
		Basic:               profile.Basic,
		HRA:                 profile.HRA,
		Allowances:          profile.Allowances,
		OvertimeRate:        profile.OvertimeRate,
		StandardWorkingDays: profile.StandardWorkingDays,
	}
}
