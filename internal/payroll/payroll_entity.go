package payroll

import (
	"time"

	"github.com/google/uuid"
)

// Payment lifecycle statuses. PENDING -> PROCESSED -> PAID is the canonical
// path; HOLD parks a slip and releases back to PENDING.
const (
	StatusPending   = "PENDING"
	StatusProcessed = "PROCESSED"
	StatusPaid      = "PAID"
	StatusHold      = "HOLD"
)

// PayrollSlip is the persisted outcome of one payroll run for one employee
// and month. The unique (employee, month) index is the idempotency backstop:
// a month is generated at most once per employee.
type PayrollSlip struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SlipNumber         string     `gorm:"type:varchar(30);not null;uniqueIndex"`
	EmployeeID         uuid.UUID  `gorm:"type:uuid;not null;index:uq_payroll_slips_employee_month,unique"`
	Month              string     `gorm:"type:varchar(7);not null;index:uq_payroll_slips_employee_month,unique"`
	GrossSalary        int64      `gorm:"type:bigint;not null"`
	TotalDeductions    int64      `gorm:"type:bigint;not null"`
	NetSalary          int64      `gorm:"type:bigint;not null"`
	Breakdown          []byte     `gorm:"type:jsonb;not null"`
	PaymentStatus      string     `gorm:"type:varchar(20);not null;default:'PENDING'"`
	PaymentDate        *time.Time `gorm:"type:date"`
	PaymentReference   *string    `gorm:"type:varchar(100)"`
	Remarks            *string    `gorm:"type:text"`
	PayslipURL         *string    `gorm:"type:text"`
	PayslipGeneratedAt *time.Time
	GeneratedBy        uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (PayrollSlip) TableName() string {
	return "payroll_slips"
}

func isValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusProcessed, StatusPaid, StatusHold:
		return true
	}
	return false
}
