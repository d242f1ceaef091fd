package leave

import "context"

// LeaveTypeRepository - leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByName(ctx context.Context, name string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	Delete(ctx context.Context, id string) error
}

// LeaveGroupRepository - leave_groups table
type LeaveGroupRepository interface {
	Create(ctx context.Context, group LeaveGroup) (LeaveGroup, error)
	GetByID(ctx context.Context, id string) (LeaveGroup, error)
	List(ctx context.Context) ([]LeaveGroup, error)
	Update(ctx context.Context, req UpdateLeaveGroupRequest) error
	Delete(ctx context.Context, id string) error
}

// LeaveApplicationRepository - leave_applications table
type LeaveApplicationRepository interface {
	Create(ctx context.Context, app LeaveApplication) (LeaveApplication, error)
	GetByID(ctx context.Context, id string) (LeaveApplication, error)
	// GetApprovedByEmployeeAndType returns every approved application of the
	// employee for one leave type; the balance calculator windows them to the
	// accounting year itself.
	GetApprovedByEmployeeAndType(ctx context.Context, employeeID, leaveType string) ([]LeaveApplication, error)
	List(ctx context.Context, filter ApplicationFilter) ([]LeaveApplication, int64, error)
	Update(ctx context.Context, req UpdateApplicationRequest) error
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus, comment *string, decidedBy string) error
	Delete(ctx context.Context, id string) error
}
