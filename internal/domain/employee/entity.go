package employee

import (
	"time"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

type Employee struct {
	ID           string
	Code         string
	FullName     string
	Department   string
	Branch       string
	PhoneNumber  *string
	LeaveGroupID *string
	Status       EmploymentStatus
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	LeaveGroupName *string
}
