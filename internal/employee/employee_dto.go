package employee

type CreateEmployeeRequest struct {
	FullName     string  `json:"full_name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	DepartmentID *string `json:"department_id"`
	JoinedAt     *string `json:"joined_at"`
}

type UpdateEmployeeStatusRequest struct {
	EmploymentStatus string `json:"employment_status" binding:"required,oneof=ACTIVE INACTIVE"`
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	DepartmentID     *string `json:"department_id,omitempty"`
	EmploymentStatus string  `json:"employment_status"`
	JoinedAt         *string `json:"joined_at,omitempty"`
}
