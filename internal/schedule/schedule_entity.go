package schedule

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	ValuePercentage = "PERCENTAGE"
	ValueFixed      = "FIXED"
)

// Statutory and benefit component types. Professional tax is the only
// slab-typed component by convention; the resolver treats any row carrying
// slab bounds the same way.
const (
	ComponentProvidentFund     = "PROVIDENT_FUND"
	ComponentHealthInsurance   = "HEALTH_INSURANCE"
	ComponentProfessionalTax   = "PROFESSIONAL_TAX"
	ComponentWelfareFund       = "WELFARE_FUND"
	ComponentTDS               = "TDS"
	ComponentDearnessAllowance = "DEARNESS_ALLOWANCE"
	ComponentEmployerPF        = "EMPLOYER_PF"
	ComponentBonus             = "BONUS"
	ComponentGratuity          = "GRATUITY"
)

// ScheduleComponent is an effective-dated statutory/benefit rule. Rows are
// retired, never deleted, so historical months stay reproducible.
type ScheduleComponent struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ComponentType string     `gorm:"type:varchar(40);not null;index"`
	ValueType     string     `gorm:"type:varchar(20);not null"`
	Value         float64    `gorm:"not null;default:0"`
	MinSalary     *int64     `gorm:"type:bigint"`
	MaxSalary     *int64     `gorm:"type:bigint"`
	EffectiveFrom time.Time  `gorm:"type:date;not null;index"`
	EffectiveTo   *time.Time `gorm:"type:date"`
	IsActive      bool       `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ScheduleComponent) TableName() string {
	return "payroll_schedule_components"
}

func (c ScheduleComponent) isSlab() bool {
	return c.MinSalary != nil && c.MaxSalary != nil
}

// ResolvedComponent is the calculated amount for one component at a given
// date and gross salary.
type ResolvedComponent struct {
	ValueType string  `json:"value_type"`
	Value     float64 `json:"value"`
	Amount    int64   `json:"amount"`
}

// RoundHalfUp is the payroll rounding policy: halves round away from zero
// toward the next whole currency unit.
func RoundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
