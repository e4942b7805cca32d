package scheduleerrors

import (
	"net/http"

	"github.com/tzevk/accent-sub006/internal/shared/apperror"
)

var (
	ErrComponentNotFound = apperror.New(
		apperror.CodeNotFound,
		"schedule component not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidSlabRange = apperror.New(
		apperror.CodeInvalidInput,
		"min_salary must be less than or equal to max_salary",
		http.StatusBadRequest,
	)
	ErrOverlappingSlab = apperror.New(
		apperror.CodeConflict,
		"slab range overlaps an existing component of the same type",
		http.StatusConflict,
	)
	ErrInvalidGrossSalary = apperror.New(
		apperror.CodeInvalidInput,
		"gross must be a non-negative amount",
		http.StatusBadRequest,
	)
	ErrAlreadyRetired = apperror.New(
		apperror.CodeInvalidState,
		"schedule component is already retired",
		http.StatusBadRequest,
	)
)
