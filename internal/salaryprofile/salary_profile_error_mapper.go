package salaryprofile

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	salaryprofileerrors "github.com/tzevk/accent-sub006/internal/salaryprofile/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_salary_profiles_employee_effective" {
			return salaryprofileerrors.ErrProfileEffectiveDateAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_salary_profiles_employee_effective") {
		return salaryprofileerrors.ErrProfileEffectiveDateAlreadyExists
	}

	return err
}
