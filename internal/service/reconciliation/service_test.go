package reconciliation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
	"github.com/meridian-erp/erp-backend-go/internal/domain/reconciliation"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/validator"
)

type fakeRequestRepo struct {
	reconciliation.RequestRepository
	requests map[string]reconciliation.Request
	nextID   int
}

func (f *fakeRequestRepo) Create(_ context.Context, req reconciliation.Request) (reconciliation.Request, error) {
	f.nextID++
	req.ID = string(rune('a' + f.nextID - 1))
	req.CreatedAt = time.Now()
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id string) (reconciliation.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return reconciliation.Request{}, reconciliation.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeRequestRepo) UpdateStatus(_ context.Context, id string, status reconciliation.Status, comment *string, reviewedBy string) error {
	req, ok := f.requests[id]
	if !ok {
		return reconciliation.ErrRequestNotFound
	}
	req.Status = status
	req.ReviewerComment = comment
	req.ReviewedBy = &reviewedBy
	now := time.Now()
	req.ReviewedAt = &now
	f.requests[id] = req
	return nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	terminated map[string]bool
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	status := employee.EmploymentStatusActive
	if f.terminated[id] {
		status = employee.EmploymentStatusTerminated
	}
	return employee.Employee{ID: id, Status: status}, nil
}

func newTestService() (*ReconciliationServiceImpl, *fakeRequestRepo, *fakeEmployeeRepo) {
	requests := &fakeRequestRepo{requests: map[string]reconciliation.Request{}}
	employees := &fakeEmployeeRepo{terminated: map[string]bool{}}
	return NewReconciliationService(requests, employees, nil), requests, employees
}

func strPtr(s string) *string { return &s }

func TestCreateRequestAttendanceKind(t *testing.T) {
	svc, _, _ := newTestService()

	req, err := svc.CreateRequest(context.Background(), reconciliation.CreateRequestRequest{
		EmployeeID:      "emp-1",
		AttendanceDate:  "2026-08-01",
		Kind:            "attendance",
		RequestedInTime: strPtr("09:15"),
		Reason:          "forgot to clock in",
	})
	require.NoError(t, err)
	assert.Equal(t, reconciliation.StatusPending, req.Status)
	assert.Equal(t, reconciliation.KindAttendance, req.Kind)
}

func TestCreateRequestValidation(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateRequest(context.Background(), reconciliation.CreateRequestRequest{
		EmployeeID:     "emp-1",
		AttendanceDate: "2026-08-01",
		Kind:           "break",
		Reason:         "missing break times",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "requested_break_start")
}

func TestCreateRequestTerminatedEmployee(t *testing.T) {
	svc, _, employees := newTestService()
	employees.terminated["emp-gone"] = true

	_, err := svc.CreateRequest(context.Background(), reconciliation.CreateRequestRequest{
		EmployeeID:      "emp-gone",
		AttendanceDate:  "2026-08-01",
		Kind:            "attendance",
		RequestedInTime: strPtr("09:00"),
		Reason:          "late",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeTerminated)
}

func TestDecideRequest(t *testing.T) {
	svc, requests, _ := newTestService()
	ctx := context.Background()

	requests.requests["r1"] = reconciliation.Request{
		ID:         "r1",
		EmployeeID: "emp-1",
		Kind:       reconciliation.KindAttendance,
		Status:     reconciliation.StatusPending,
	}

	decided, err := svc.DecideRequest(ctx, reconciliation.DecideRequestRequest{
		RequestID:       "r1",
		ReviewerComment: strPtr("checked against door logs"),
	}, true, "hr-1")
	require.NoError(t, err)
	assert.Equal(t, reconciliation.StatusApproved, decided.Status)
	require.NotNil(t, decided.ReviewedBy)
	assert.Equal(t, "hr-1", *decided.ReviewedBy)
	require.NotNil(t, decided.ReviewerComment)
	assert.Equal(t, "checked against door logs", *decided.ReviewerComment)
}
