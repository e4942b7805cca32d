package payrollerrors

import (
	"net/http"

	"github.com/tzevk/accent-sub006/internal/shared/apperror"
)

var (
	ErrSlipAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Payslip for this employee and month already exists",
		http.StatusConflict,
	)
	ErrSlipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found",
		http.StatusNotFound,
	)
	ErrProfileMissing = apperror.New(
		apperror.CodeInvalidState,
		"no salary profile is effective for this employee and month",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidMonthFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month format, expected YYYY-MM",
		http.StatusBadRequest,
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
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payment status",
		http.StatusBadRequest,
	)
	ErrPaymentDateRequired = apperror.New(
		apperror.CodeInvalidInput,
		"payment_date is required when status is PAID",
		http.StatusBadRequest,
	)
	ErrPayslipNotGenerated = apperror.New(
		apperror.CodeInvalidState,
		"payslip document has not been generated yet",
		http.StatusConflict,
	)
	ErrEmployeeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"employee_id is required unless all is set",
		http.StatusBadRequest,
	)
)
