package payroll

import (
	"encoding/json"
	"time"
)

// GeneratePayslipRequest drives a payroll run. One of EmployeeID or All must
// be set; Preview calculates without persisting anything.
type GeneratePayslipRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month" binding:"required"`
	All        bool   `json:"all"`
	Preview    bool   `json:"preview"`
}

type UpdateLifecycleRequest struct {
	Status           string  `json:"status" binding:"required,oneof=PENDING PROCESSED PAID HOLD"`
	PaymentDate      *string `json:"payment_date"`
	PaymentReference *string `json:"payment_reference"`
	Remarks          *string `json:"remarks"`
}

type PayslipResponse struct {
	ID                 string          `json:"id"`
	SlipNumber         string          `json:"slip_number"`
	EmployeeID         string          `json:"employee_id"`
	Month              string          `json:"month"`
	GrossSalary        int64           `json:"gross_salary"`
	TotalDeductions    int64           `json:"total_deductions"`
	NetSalary          int64           `json:"net_salary"`
	Breakdown          json.RawMessage `json:"breakdown"`
	PaymentStatus      string          `json:"payment_status"`
	PaymentDate        *string         `json:"payment_date,omitempty"`
	PaymentReference   *string         `json:"payment_reference,omitempty"`
	Remarks            *string         `json:"remarks,omitempty"`
	PayslipURL         *string         `json:"payslip_url,omitempty"`
	PayslipGeneratedAt *string         `json:"payslip_generated_at,omitempty"`
	GeneratedBy        string          `json:"generated_by"`
	CreatedAt          string          `json:"created_at"`
}

// PreviewResponse is a dry-run calculation. Nothing is persisted and no slip
// number is reserved.
type PreviewResponse struct {
	EmployeeID string    `json:"employee_id"`
	Month      string    `json:"month"`
	Breakdown  Breakdown `json:"breakdown"`
}

// Per-employee outcome of a batch run.
const (
	OutcomeCreated = "created"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

type BatchOutcome struct {
	EmployeeID string           `json:"employee_id"`
	Outcome    string           `json:"outcome"`
	Reason     string           `json:"reason,omitempty"`
	Slip       *PayslipResponse `json:"slip,omitempty"`
}

type BatchGenerateResponse struct {
	Month    string         `json:"month"`
	Created  int            `json:"created"`
	Skipped  int            `json:"skipped"`
	Failed   int            `json:"failed"`
	Outcomes []BatchOutcome `json:"outcomes"`
}

func mapToResponse(slip PayrollSlip) PayslipResponse {
	resp := PayslipResponse{
		ID:               slip.ID.String(),
		SlipNumber:       slip.SlipNumber,
		EmployeeID:       slip.EmployeeID.String(),
		Month:            slip.Month,
		GrossSalary:      slip.GrossSalary,
		TotalDeductions:  slip.TotalDeductions,
		NetSalary:        slip.NetSalary,
		Breakdown:        json.RawMessage(slip.Breakdown),
		PaymentStatus:    slip.PaymentStatus,
		PaymentReference: slip.PaymentReference,
		Remarks:          slip.Remarks,
		PayslipURL:       slip.PayslipURL,
		GeneratedBy:      slip.GeneratedBy.String(),
		CreatedAt:        slip.CreatedAt.Format(time.RFC3339),
	}

	if slip.PaymentDate != nil {
		v := slip.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &v
	}
	if slip.PayslipGeneratedAt != nil {
		v := slip.PayslipGeneratedAt.Format(time.RFC3339)
		resp.PayslipGeneratedAt = &v
	}

	return resp
}

func mapToListResponse(slips []PayrollSlip) []PayslipResponse {
	resp := make([]PayslipResponse, len(slips))
	for i, slip := range slips {
		resp[i] = mapToResponse(slip)
	}
	return resp
}
