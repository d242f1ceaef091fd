package employee

import (
	"context"

	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
	"github.com/meridian-erp/erp-backend-go/internal/domain/leave"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	groups leave.LeaveGroupRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, groupRepo leave.LeaveGroupRepository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		groups:             groupRepo,
	}
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if req.LeaveGroupID != nil && *req.LeaveGroupID != "" {
		if _, err := s.groups.GetByID(ctx, *req.LeaveGroupID); err != nil {
			return employee.Employee{}, err
		}
	}

	return s.EmployeeRepository.Create(ctx, employee.Employee{
		Code:         req.Code,
		FullName:     req.FullName,
		Department:   req.Department,
		Branch:       req.Branch,
		PhoneNumber:  req.PhoneNumber,
		LeaveGroupID: req.LeaveGroupID,
		Status:       employee.EmploymentStatusActive,
		HireDate:     req.HireDateTime(),
	})
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return s.EmployeeRepository.List(ctx, filter)
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if req.LeaveGroupID != nil && *req.LeaveGroupID != "" {
		if _, err := s.groups.GetByID(ctx, *req.LeaveGroupID); err != nil {
			return employee.Employee{}, err
		}
	}

	if err := s.EmployeeRepository.Update(ctx, req); err != nil {
		return employee.Employee{}, err
	}
	return s.EmployeeRepository.GetByID(ctx, req.ID)
}

// TerminateEmployee flips the status. Records are never hard-deleted.
func (s *EmployeeServiceImpl) TerminateEmployee(ctx context.Context, id string) error {
	return s.EmployeeRepository.SetStatus(ctx, id, employee.EmploymentStatusTerminated)
}

func (s *EmployeeServiceImpl) ReactivateEmployee(ctx context.Context, id string) error {
	return s.EmployeeRepository.SetStatus(ctx, id, employee.EmploymentStatusActive)
}
