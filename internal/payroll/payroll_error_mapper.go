package payroll

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	payrollerrors "github.com/tzevk/accent-sub006/internal/payroll/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_payroll_slips_employee_month" {
			return payrollerrors.ErrSlipAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_payroll_slips_employee_month") {
		return payrollerrors.ErrSlipAlreadyExists
	}

	return err
}
