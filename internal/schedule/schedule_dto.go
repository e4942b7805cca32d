package schedule

type CreateScheduleComponentRequest struct {
	ComponentType string  `json:"component_type" binding:"required,oneof=PROVIDENT_FUND HEALTH_INSURANCE PROFESSIONAL_TAX WELFARE_FUND TDS DEARNESS_ALLOWANCE EMPLOYER_PF BONUS GRATUITY"`
	ValueType     string  `json:"value_type" binding:"required,oneof=PERCENTAGE FIXED"`
	Value         float64 `json:"value" binding:"min=0"`
	MinSalary     *int64  `json:"min_salary"`
	MaxSalary     *int64  `json:"max_salary"`
	EffectiveFrom string  `json:"effective_from" binding:"required"`
	EffectiveTo   *string `json:"effective_to"`
}

type RetireScheduleComponentRequest struct {
	EffectiveTo string `json:"effective_to" binding:"required"`
}

type ScheduleComponentResponse struct {
	ID            string  `json:"id"`
	ComponentType string  `json:"component_type"`
	ValueType     string  `json:"value_type"`
	Value         float64 `json:"value"`
	MinSalary     *int64  `json:"min_salary,omitempty"`
	MaxSalary     *int64  `json:"max_salary,omitempty"`
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to,omitempty"`
	IsActive      bool    `json:"is_active"`
}
