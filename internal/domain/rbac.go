package domain

type EnforceRequest struct {
	EmployeeID string
	Resource   string
	Action     string
}
