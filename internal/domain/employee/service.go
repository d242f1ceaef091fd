package employee

import (
	"context"
)

// EmployeeService defines business logic for the employee directory.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	GetEmployee(ctx context.Context, id string) (Employee, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)

	// TerminateEmployee flips the employment status; records are never hard-deleted.
	TerminateEmployee(ctx context.Context, id string) error
	ReactivateEmployee(ctx context.Context, id string) error
}
