package attendance

type RecordDayRequest struct {
	EmployeeID     string  `json:"employee_id" binding:"required,uuid"`
	AttendanceDate string  `json:"attendance_date" binding:"required"`
	Status         string  `json:"status" binding:"required,oneof=PRESENT ABSENT PAID_LEAVE SICK_LEAVE CASUAL_LEAVE OVERTIME WEEKLY_OFF HOLIDAY HALF_DAY"`
	OvertimeHours  float64 `json:"overtime_hours"`
	Remarks        *string `json:"remarks"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	AttendanceDate string  `json:"attendance_date"`
	Status         string  `json:"status"`
	OvertimeHours  float64 `json:"overtime_hours"`
	Remarks        *string `json:"remarks,omitempty"`
}
