package events

import "time"

const PayslipGeneratedTopic = "payroll.payslip.generated.v1"

type PayslipGeneratedEvent struct {
	EventType   string    `json:"event_type"`
	SlipID      string    `json:"slip_id"`
	EmployeeID  string    `json:"employee_id"`
	Month       string    `json:"month"`
	NetSalary   int64     `json:"net_salary"`
	GeneratedBy string    `json:"generated_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
