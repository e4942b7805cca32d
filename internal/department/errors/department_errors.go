package departmenterrors

import (
	"net/http"

	"github.com/tzevk/accent-sub006/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"department not found",
		http.StatusNotFound,
	)
	ErrDepartmentNameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Department with this name already exists",
		http.StatusConflict,
	)
)
