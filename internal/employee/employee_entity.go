package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

type Employee struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DepartmentID     *uuid.UUID `gorm:"type:uuid"`
	FullName         string     `gorm:"not null"`
	Email            string     `gorm:"uniqueIndex"`
	EmploymentStatus string     `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	JoinedAt         *time.Time `gorm:"type:date"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Employee) TableName() string {
	return "employees"
}
