package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
	"github.com/meridian-erp/erp-backend-go/internal/domain/leave"
	"github.com/meridian-erp/erp-backend-go/internal/domain/settings"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/validator"
)

// Notifier publishes application lifecycle events to interested users.
type Notifier interface {
	LeaveRequested(ctx context.Context, app leave.LeaveApplication)
	LeaveDecided(ctx context.Context, app leave.LeaveApplication)
}

type LeaveServiceImpl struct {
	leave.LeaveTypeRepository
	leave.LeaveGroupRepository
	leave.LeaveApplicationRepository
	employee.EmployeeRepository
	financialSettings settings.FinancialSettingsRepository
	notifier          Notifier
}

func NewLeaveService(
	typeRepo leave.LeaveTypeRepository,
	groupRepo leave.LeaveGroupRepository,
	appRepo leave.LeaveApplicationRepository,
	employeeRepo employee.EmployeeRepository,
	financialSettings settings.FinancialSettingsRepository,
	notifier Notifier,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		LeaveTypeRepository:        typeRepo,
		LeaveGroupRepository:       groupRepo,
		LeaveApplicationRepository: appRepo,
		EmployeeRepository:         employeeRepo,
		financialSettings:          financialSettings,
		notifier:                   notifier,
	}
}

func (s *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}
	return s.LeaveTypeRepository.Create(ctx, leave.LeaveType{Name: req.Name})
}

func (s *LeaveServiceImpl) ListLeaveTypes(ctx context.Context) ([]leave.LeaveType, error) {
	return s.LeaveTypeRepository.List(ctx)
}

func (s *LeaveServiceImpl) DeleteLeaveType(ctx context.Context, id string) error {
	return s.LeaveTypeRepository.Delete(ctx, id)
}

func (s *LeaveServiceImpl) CreateLeaveGroup(ctx context.Context, req leave.CreateLeaveGroupRequest) (leave.LeaveGroup, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveGroup{}, err
	}
	return s.LeaveGroupRepository.Create(ctx, leave.LeaveGroup{
		Name:     req.Name,
		Policies: leave.PolicySet(req.Policies),
	})
}

func (s *LeaveServiceImpl) GetLeaveGroup(ctx context.Context, id string) (leave.LeaveGroup, error) {
	return s.LeaveGroupRepository.GetByID(ctx, id)
}

func (s *LeaveServiceImpl) ListLeaveGroups(ctx context.Context) ([]leave.LeaveGroup, error) {
	return s.LeaveGroupRepository.List(ctx)
}

func (s *LeaveServiceImpl) UpdateLeaveGroup(ctx context.Context, req leave.UpdateLeaveGroupRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.LeaveGroupRepository.Update(ctx, req)
}

func (s *LeaveServiceImpl) DeleteLeaveGroup(ctx context.Context, id string) error {
	return s.LeaveGroupRepository.Delete(ctx, id)
}

// accountingWindow returns the accounting-year window containing at. Without
// configured financial settings the calendar year is used.
func (s *LeaveServiceImpl) accountingWindow(ctx context.Context, at time.Time) (time.Time, time.Time, error) {
	fs, err := s.financialSettings.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			fs = &settings.FinancialSettings{FinancialYearStart: 1}
		} else {
			return time.Time{}, time.Time{}, fmt.Errorf("failed to load financial settings: %w", err)
		}
	}
	start, end := fs.YearWindow(at)
	return start, end, nil
}

// policyFor resolves the employee's policy for a leave type. The second
// return is false when the employee has no group or the group carries no
// policy for the type, in which case the balance check is skipped.
func (s *LeaveServiceImpl) policyFor(ctx context.Context, emp employee.Employee, leaveType string) (leave.Policy, bool, error) {
	if emp.LeaveGroupID == nil {
		return leave.Policy{}, false, nil
	}
	group, err := s.LeaveGroupRepository.GetByID(ctx, *emp.LeaveGroupID)
	if err != nil {
		if errors.Is(err, leave.ErrGroupNotFound) {
			return leave.Policy{}, false, nil
		}
		return leave.Policy{}, false, err
	}
	policy, found := group.Policies.ForType(leaveType)
	return policy, found, nil
}

// checkBalance enforces the policy for an application covering [from, to].
// excludeID removes one application from the used-days sum.
func (s *LeaveServiceImpl) checkBalance(ctx context.Context, emp employee.Employee, leaveType string, from, to time.Time, excludeID string) error {
	policy, found, err := s.policyFor(ctx, emp, leaveType)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if policy.NegativeBalance {
		return nil
	}

	windowStart, windowEnd, err := s.accountingWindow(ctx, from)
	if err != nil {
		return err
	}

	approved, err := s.LeaveApplicationRepository.GetApprovedByEmployeeAndType(ctx, emp.ID, leaveType)
	if err != nil {
		return fmt.Errorf("failed to load approved applications: %w", err)
	}

	used := UsedDays(approved, windowStart, windowEnd, excludeID)
	requested := CalendarDays(from, to)
	if !Admissible(policy, used, requested) {
		return leave.ErrInsufficientBalance
	}
	return nil
}

func (s *LeaveServiceImpl) CreateApplication(ctx context.Context, req leave.CreateApplicationRequest) (leave.LeaveApplication, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveApplication{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveApplication{}, err
	}
	if emp.Status == employee.EmploymentStatusTerminated {
		return leave.LeaveApplication{}, employee.ErrEmployeeTerminated
	}

	from, to := req.DateRange()
	if err := s.checkBalance(ctx, emp, req.LeaveType, from, to, ""); err != nil {
		return leave.LeaveApplication{}, err
	}

	app, err := s.LeaveApplicationRepository.Create(ctx, leave.LeaveApplication{
		EmployeeID: req.EmployeeID,
		LeaveType:  req.LeaveType,
		FromDate:   from,
		ToDate:     to,
		Reason:     req.Reason,
		Status:     leave.ApplicationStatusPending,
	})
	if err != nil {
		return leave.LeaveApplication{}, err
	}

	if s.notifier != nil {
		s.notifier.LeaveRequested(ctx, app)
	}

	return app, nil
}

func (s *LeaveServiceImpl) GetApplication(ctx context.Context, id string) (leave.LeaveApplication, error) {
	return s.LeaveApplicationRepository.GetByID(ctx, id)
}

func (s *LeaveServiceImpl) ListApplications(ctx context.Context, filter leave.ApplicationFilter) ([]leave.LeaveApplication, int64, error) {
	return s.LeaveApplicationRepository.List(ctx, filter)
}

// UpdateApplication edits an application regardless of its current status.
// The balance is re-checked against the edited range, with the application
// itself excluded from the used-days sum.
func (s *LeaveServiceImpl) UpdateApplication(ctx context.Context, req leave.UpdateApplicationRequest) (leave.LeaveApplication, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveApplication{}, err
	}

	app, err := s.LeaveApplicationRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveApplication{}, err
	}

	leaveType := app.LeaveType
	if req.LeaveType != nil {
		leaveType = *req.LeaveType
	}
	from := app.FromDate
	if req.FromDate != nil {
		from = mustParseDate(*req.FromDate)
	}
	to := app.ToDate
	if req.ToDate != nil {
		to = mustParseDate(*req.ToDate)
	}
	if to.Before(from) {
		return leave.LeaveApplication{}, validator.ValidationErrors{{
			Field:   "to_date",
			Message: "to_date must not be before from_date",
		}}
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, app.EmployeeID)
	if err != nil {
		return leave.LeaveApplication{}, err
	}

	if err := s.checkBalance(ctx, emp, leaveType, from, to, app.ID); err != nil {
		return leave.LeaveApplication{}, err
	}

	if err := s.LeaveApplicationRepository.Update(ctx, req); err != nil {
		return leave.LeaveApplication{}, err
	}

	return s.LeaveApplicationRepository.GetByID(ctx, req.ID)
}

// DecideApplication approves or rejects. Approval re-runs the balance check
// so a pending application cannot be approved into an overdrawn year.
func (s *LeaveServiceImpl) DecideApplication(ctx context.Context, req leave.DecideApplicationRequest, approve bool, decidedBy string) (leave.LeaveApplication, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveApplication{}, err
	}

	app, err := s.LeaveApplicationRepository.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return leave.LeaveApplication{}, err
	}

	status := leave.ApplicationStatusRejected
	if approve {
		emp, err := s.EmployeeRepository.GetByID(ctx, app.EmployeeID)
		if err != nil {
			return leave.LeaveApplication{}, err
		}
		if err := s.checkBalance(ctx, emp, app.LeaveType, app.FromDate, app.ToDate, app.ID); err != nil {
			return leave.LeaveApplication{}, err
		}
		status = leave.ApplicationStatusApproved
	}

	if err := s.LeaveApplicationRepository.UpdateStatus(ctx, app.ID, status, req.ApproverComment, decidedBy); err != nil {
		return leave.LeaveApplication{}, err
	}

	decided, err := s.LeaveApplicationRepository.GetByID(ctx, app.ID)
	if err != nil {
		return leave.LeaveApplication{}, err
	}

	if s.notifier != nil {
		s.notifier.LeaveDecided(ctx, decided)
	}

	return decided, nil
}

func (s *LeaveServiceImpl) DeleteApplication(ctx context.Context, id string) error {
	return s.LeaveApplicationRepository.Delete(ctx, id)
}

// Balance is the live readout shown while an application form is filled in.
func (s *LeaveServiceImpl) Balance(ctx context.Context, employeeID, leaveType string, at time.Time) (leave.BalanceResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	resp := leave.BalanceResponse{
		EmployeeID: employeeID,
		LeaveType:  leaveType,
		Year:       at.Year(),
	}

	policy, found, err := s.policyFor(ctx, emp, leaveType)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	if !found {
		return resp, nil
	}
	resp.PolicyFound = true

	windowStart, windowEnd, err := s.accountingWindow(ctx, at)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	resp.Year = windowStart.Year()

	approved, err := s.LeaveApplicationRepository.GetApprovedByEmployeeAndType(ctx, employeeID, leaveType)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to load approved applications: %w", err)
	}

	used := UsedDays(approved, windowStart, windowEnd, "")
	balance := policy.AllowedBalance - used

	resp.AllowedBalance = &policy.AllowedBalance
	resp.UsedDays = &used
	resp.Balance = &balance
	return resp, nil
}

func mustParseDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}
