package leave

import (
	"context"
	"time"
)

// LeaveService covers leave types, leave groups, applications, and the
// balance readout.
type LeaveService interface {
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveType, error)
	ListLeaveTypes(ctx context.Context) ([]LeaveType, error)
	DeleteLeaveType(ctx context.Context, id string) error

	CreateLeaveGroup(ctx context.Context, req CreateLeaveGroupRequest) (LeaveGroup, error)
	GetLeaveGroup(ctx context.Context, id string) (LeaveGroup, error)
	ListLeaveGroups(ctx context.Context) ([]LeaveGroup, error)
	UpdateLeaveGroup(ctx context.Context, req UpdateLeaveGroupRequest) error
	DeleteLeaveGroup(ctx context.Context, id string) error

	CreateApplication(ctx context.Context, req CreateApplicationRequest) (LeaveApplication, error)
	GetApplication(ctx context.Context, id string) (LeaveApplication, error)
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]LeaveApplication, int64, error)
	UpdateApplication(ctx context.Context, req UpdateApplicationRequest) (LeaveApplication, error)
	DecideApplication(ctx context.Context, req DecideApplicationRequest, approve bool, decidedBy string) (LeaveApplication, error)
	DeleteApplication(ctx context.Context, id string) error

	Balance(ctx context.Context, employeeID, leaveType string, at time.Time) (BalanceResponse, error)
}
