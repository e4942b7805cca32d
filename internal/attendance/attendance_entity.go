package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent     = "PRESENT"
	StatusAbsent      = "ABSENT"
	StatusPaidLeave   = "PAID_LEAVE"
	StatusSickLeave   = "SICK_LEAVE"
	StatusCasualLeave = "CASUAL_LEAVE"
	StatusOvertime    = "OVERTIME"
	StatusWeeklyOff   = "WEEKLY_OFF"
	StatusHoliday     = "HOLIDAY"
	StatusHalfDay     = "HALF_DAY"
)

type AttendanceRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;index:uq_attendance_employee_date,unique"`
	AttendanceDate time.Time `gorm:"type:date;not null;index:uq_attendance_employee_date,unique"`
	Status         string    `gorm:"type:varchar(20);not null;default:'PRESENT'"`
	OvertimeHours  float64   `gorm:"not null;default:0"`
	Remarks        *string   `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// Summary is the derived payable-day view of one employee's period. It is
// never stored; the payroll calculator embeds it in the slip breakdown.
type Summary struct {
	EmployeeID          string    `json:"employee_id"`
	From                time.Time `json:"from"`
	To                  time.Time `json:"to"`
	PresentDays         float64   `json:"present_days"`
	AbsentDays          float64   `json:"absent_days"`
	PaidLeaveDays       float64   `json:"paid_leave_days"`
	WeeklyOffDays       float64   `json:"weekly_off_days"`
	OvertimeHours       float64   `json:"overtime_hours"`
	PayableDays         float64   `json:"payable_days"`
	LOPDays             float64   `json:"lop_days"`
	StandardWorkingDays int       `json:"standard_working_days"`
	PayRatio            float64   `json:"pay_ratio"`
	AttendancePercent   float64   `json:"attendance_percent"`
}
