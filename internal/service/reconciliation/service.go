package reconciliation

import (
	"context"

	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
	"github.com/meridian-erp/erp-backend-go/internal/domain/reconciliation"
)

type Notifier interface {
	ReconciliationRequested(ctx context.Context, req reconciliation.Request)
	ReconciliationDecided(ctx context.Context, req reconciliation.Request)
}

type ReconciliationServiceImpl struct {
	reconciliation.RequestRepository
	employees employee.EmployeeRepository
	notifier  Notifier
}

func NewReconciliationService(
	requestRepo reconciliation.RequestRepository,
	employeeRepo employee.EmployeeRepository,
	notifier Notifier,
) *ReconciliationServiceImpl {
	return &ReconciliationServiceImpl{
		RequestRepository: requestRepo,
		employees:         employeeRepo,
		notifier:          notifier,
	}
}

func (s *ReconciliationServiceImpl) CreateRequest(ctx context.Context, req reconciliation.CreateRequestRequest) (reconciliation.Request, error) {
	if err := req.Validate(); err != nil {
		return reconciliation.Request{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return reconciliation.Request{}, err
	}
	if emp.Status == employee.EmploymentStatusTerminated {
		return reconciliation.Request{}, employee.ErrEmployeeTerminated
	}

	created, err := s.RequestRepository.Create(ctx, reconciliation.Request{
		EmployeeID:          req.EmployeeID,
		AttendanceDate:      req.Date(),
		Kind:                reconciliation.Kind(req.Kind),
		RequestedInTime:     req.RequestedInTime,
		RequestedOutTime:    req.RequestedOutTime,
		RequestedBreakStart: req.RequestedBreakStart,
		RequestedBreakEnd:   req.RequestedBreakEnd,
		Reason:              req.Reason,
		Status:              reconciliation.StatusPending,
	})
	if err != nil {
		return reconciliation.Request{}, err
	}

	if s.notifier != nil {
		s.notifier.ReconciliationRequested(ctx, created)
	}

	return created, nil
}

func (s *ReconciliationServiceImpl) GetRequest(ctx context.Context, id string) (reconciliation.Request, error) {
	return s.RequestRepository.GetByID(ctx, id)
}

func (s *ReconciliationServiceImpl) ListRequests(ctx context.Context, filter reconciliation.RequestFilter) ([]reconciliation.Request, int64, error) {
	return s.RequestRepository.List(ctx, filter)
}

// DecideRequest approves or rejects a proposal. The underlying attendance
// record is never mutated here; approval is a reviewed go-ahead for whoever
// maintains the attendance source.
func (s *ReconciliationServiceImpl) DecideRequest(ctx context.Context, req reconciliation.DecideRequestRequest, approve bool, reviewedBy string) (reconciliation.Request, error) {
	if err := req.Validate(); err != nil {
		return reconciliation.Request{}, err
	}

	if _, err := s.RequestRepository.GetByID(ctx, req.RequestID); err != nil {
		return reconciliation.Request{}, err
	}

	status := reconciliation.StatusRejected
	if approve {
		status = reconciliation.StatusApproved
	}

	if err := s.RequestRepository.UpdateStatus(ctx, req.RequestID, status, req.ReviewerComment, reviewedBy); err != nil {
		return reconciliation.Request{}, err
	}

	decided, err := s.RequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return reconciliation.Request{}, err
	}

	if s.notifier != nil {
		s.notifier.ReconciliationDecided(ctx, decided)
	}

	return decided, nil
}
