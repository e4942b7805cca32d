package salaryprofile

type CreateSalaryProfileRequest struct {
	EmployeeID          string `json:"employee_id" binding:"required,uuid"`
	EffectiveFrom       string `json:"effective_from" binding:"required"`
	DAYear              int    `json:"da_year"`
	Basic               int64  `json:"basic" binding:"required"`
	HRA                 int64  `json:"hra"`
	Allowances          int64  `json:"allowances"`
	OvertimeRate        int64  `json:"overtime_rate"`
	StandardWorkingDays int    `json:"standard_working_days"`
}

type SalaryProfileResponse struct {
	ID                  string `json:"id"`
	EmployeeID          string `json:"employee_id"`
	EffectiveFrom       string `json:"effective_from"`
	DAYear              int    `json:"da_year"`
	Basic               int64  `json:"basic"`
	HRA                 int64  `json:"hra"`
	Allowances          int64  `json:"allowances"`
	OvertimeRate        int64  `json:"overtime_rate"`
	StandardWorkingDays int    `json:"standard_working_days"`
}
