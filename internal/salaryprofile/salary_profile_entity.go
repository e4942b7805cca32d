package salaryprofile

import (
	"time"

	"github.com/google/uuid"
)

// DefaultStandardWorkingDays applies when a profile predates the working
// days column. Documented payroll policy, not a derived value.
const DefaultStandardWorkingDays = 26

// SalaryProfile is an effective-dated earnings record. Profiles are never
// updated in place; a superseding row with a later EffectiveFrom wins.
type SalaryProfile struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID          uuid.UUID `gorm:"type:uuid;not null;index:uq_salary_profiles_employee_effective,unique"`
	EffectiveFrom       time.Time `gorm:"type:date;not null;index:uq_salary_profiles_employee_effective,unique"`
	DAYear              int       `gorm:"column:da_year;not null;default:0"`
	Basic               int64     `gorm:"type:bigint;not null;default:0"`
	HRA                 int64     `gorm:"column:hra;type:bigint;not null;default:0"`
	Allowances          int64     `gorm:"type:bigint;not null;default:0"`
	OvertimeRate        int64     `gorm:"type:bigint;not null;default:0"`
	StandardWorkingDays int       `gorm:"not null;default:26"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (SalaryProfile) TableName() string {
	return "salary_profiles"
}

// WorkingDays returns the profile's standard working days, falling back to
// the documented default when unset.
func (p SalaryProfile) WorkingDays() int {
	if p.StandardWorkingDays <= 0 {
		return DefaultStandardWorkingDays
	}
	return p.StandardWorkingDays
}
