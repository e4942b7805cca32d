package salaryprofileerrors

import (
	"net/http"

	"github.com/tzevk/accent-sub006/internal/shared/apperror"
)

var (
	ErrProfileEffectiveDateAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Salary profile for this employee and effective date already exists",
		http.StatusConflict,
	)
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary profile not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"salary components cannot be negative",
		http.StatusBadRequest,
	)
)
