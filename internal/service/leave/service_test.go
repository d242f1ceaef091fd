package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
	"github.com/meridian-erp/erp-backend-go/internal/domain/leave"
	"github.com/meridian-erp/erp-backend-go/internal/domain/settings"
)

type fakeTypeRepo struct {
	leave.LeaveTypeRepository
}

type fakeGroupRepo struct {
	leave.LeaveGroupRepository
	groups map[string]leave.LeaveGroup
}

func (f *fakeGroupRepo) GetByID(_ context.Context, id string) (leave.LeaveGroup, error) {
	g, ok := f.groups[id]
	if !ok {
		return leave.LeaveGroup{}, leave.ErrGroupNotFound
	}
	return g, nil
}

type fakeAppRepo struct {
	leave.LeaveApplicationRepository
	apps   map[string]leave.LeaveApplication
	nextID int
}

func (f *fakeAppRepo) Create(_ context.Context, app leave.LeaveApplication) (leave.LeaveApplication, error) {
	f.nextID++
	app.ID = string(rune('a' + f.nextID - 1))
	app.CreatedAt = time.Now()
	f.apps[app.ID] = app
	return app, nil
}

func (f *fakeAppRepo) GetByID(_ context.Context, id string) (leave.LeaveApplication, error) {
	app, ok := f.apps[id]
	if !ok {
		return leave.LeaveApplication{}, leave.ErrApplicationNotFound
	}
	return app, nil
}

func (f *fakeAppRepo) GetApprovedByEmployeeAndType(_ context.Context, employeeID, leaveType string) ([]leave.LeaveApplication, error) {
	var out []leave.LeaveApplication
	for _, app := range f.apps {
		if app.EmployeeID == employeeID && app.LeaveType == leaveType && app.Status == leave.ApplicationStatusApproved {
			out = append(out, app)
		}
	}
	return out, nil
}

func (f *fakeAppRepo) UpdateStatus(_ context.Context, id string, status leave.ApplicationStatus, comment *string, decidedBy string) error {
	app, ok := f.apps[id]
	if !ok {
		return leave.ErrApplicationNotFound
	}
	app.Status = status
	app.ApproverComment = comment
	app.DecidedBy = &decidedBy
	now := time.Now()
	app.DecidedAt = &now
	f.apps[id] = app
	return nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type fakeSettingsRepo struct{}

func (f *fakeSettingsRepo) Get(_ context.Context) (*settings.FinancialSettings, error) {
	return nil, settings.ErrSettingsNotFound
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, _ *settings.FinancialSettings) error {
	return nil
}

func newTestService(t *testing.T) (*LeaveServiceImpl, *fakeAppRepo) {
	t.Helper()

	groupID := "grp-1"
	groups := &fakeGroupRepo{groups: map[string]leave.LeaveGroup{
		groupID: {
			ID:   groupID,
			Name: "Staff",
			Policies: leave.PolicySet{
				{LeaveTypeName: "Casual", AllowedBalance: 10, NegativeBalance: false},
				{LeaveTypeName: "Unpaid", AllowedBalance: 0, NegativeBalance: true},
			},
		},
	}}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Code: "1000-0001", FullName: "Test Employee", Status: employee.EmploymentStatusActive, LeaveGroupID: &groupID},
		"emp-2": {ID: "emp-2", Code: "1000-0002", FullName: "No Group", Status: employee.EmploymentStatusActive},
	}}
	apps := &fakeAppRepo{apps: map[string]leave.LeaveApplication{}}

	svc := NewLeaveService(&fakeTypeRepo{}, groups, apps, employees, &fakeSettingsRepo{}, nil)
	return svc, apps
}

func thisYear(month time.Month, day int) string {
	return time.Date(time.Now().Year(), month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

func TestCreateApplicationInsufficientBalance(t *testing.T) {
	svc, apps := newTestService(t)
	ctx := context.Background()

	// 6 approved days already in the current year.
	apps.apps["existing"] = leave.LeaveApplication{
		ID:         "existing",
		EmployeeID: "emp-1",
		LeaveType:  "Casual",
		FromDate:   time.Date(time.Now().Year(), 2, 1, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(time.Now().Year(), 2, 6, 0, 0, 0, 0, time.UTC),
		Status:     leave.ApplicationStatusApproved,
	}

	// 5 more would exceed the 10-day allowance.
	_, err := svc.CreateApplication(ctx, leave.CreateApplicationRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Casual",
		FromDate:   thisYear(6, 1),
		ToDate:     thisYear(6, 5),
		Reason:     "family event",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)

	// 4 exactly fills the allowance.
	app, err := svc.CreateApplication(ctx, leave.CreateApplicationRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Casual",
		FromDate:   thisYear(6, 1),
		ToDate:     thisYear(6, 4),
		Reason:     "family event",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.ApplicationStatusPending, app.Status)
}

func TestCreateApplicationNegativeBalancePolicy(t *testing.T) {
	svc, _ := newTestService(t)

	app, err := svc.CreateApplication(context.Background(), leave.CreateApplicationRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Unpaid",
		FromDate:   thisYear(1, 1),
		ToDate:     thisYear(3, 31),
		Reason:     "sabbatical",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.ApplicationStatusPending, app.Status)
}

func TestCreateApplicationNoPolicySkipsCheck(t *testing.T) {
	svc, _ := newTestService(t)

	// emp-2 has no leave group, so any range is allowed.
	_, err := svc.CreateApplication(context.Background(), leave.CreateApplicationRequest{
		EmployeeID: "emp-2",
		LeaveType:  "Casual",
		FromDate:   thisYear(1, 1),
		ToDate:     thisYear(12, 31),
		Reason:     "no policy configured",
	})
	assert.NoError(t, err)
}

func TestDecideApplicationApproveRechecksBalance(t *testing.T) {
	svc, apps := newTestService(t)
	ctx := context.Background()

	apps.apps["used"] = leave.LeaveApplication{
		ID:         "used",
		EmployeeID: "emp-1",
		LeaveType:  "Casual",
		FromDate:   time.Date(time.Now().Year(), 2, 1, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(time.Now().Year(), 2, 8, 0, 0, 0, 0, time.UTC), // 8 days
		Status:     leave.ApplicationStatusApproved,
	}
	apps.apps["pending"] = leave.LeaveApplication{
		ID:         "pending",
		EmployeeID: "emp-1",
		LeaveType:  "Casual",
		FromDate:   time.Date(time.Now().Year(), 6, 1, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(time.Now().Year(), 6, 4, 0, 0, 0, 0, time.UTC), // 4 days
		Status:     leave.ApplicationStatusPending,
	}

	_, err := svc.DecideApplication(ctx, leave.DecideApplicationRequest{ApplicationID: "pending"}, true, "approver-1")
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)

	// Rejection needs no balance.
	decided, err := svc.DecideApplication(ctx, leave.DecideApplicationRequest{ApplicationID: "pending"}, false, "approver-1")
	require.NoError(t, err)
	assert.Equal(t, leave.ApplicationStatusRejected, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "approver-1", *decided.DecidedBy)
}

func TestBalanceReadout(t *testing.T) {
	svc, apps := newTestService(t)
	ctx := context.Background()

	apps.apps["a"] = leave.LeaveApplication{
		ID:         "a",
		EmployeeID: "emp-1",
		LeaveType:  "Casual",
		FromDate:   time.Date(time.Now().Year(), 4, 1, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(time.Now().Year(), 4, 3, 0, 0, 0, 0, time.UTC),
		Status:     leave.ApplicationStatusApproved,
	}

	resp, err := svc.Balance(ctx, "emp-1", "Casual", time.Now())
	require.NoError(t, err)
	require.True(t, resp.PolicyFound)
	assert.Equal(t, float64(10), *resp.AllowedBalance)
	assert.Equal(t, float64(3), *resp.UsedDays)
	assert.Equal(t, float64(7), *resp.Balance)

	resp, err = svc.Balance(ctx, "emp-2", "Casual", time.Now())
	require.NoError(t, err)
	assert.False(t, resp.PolicyFound)
	assert.Nil(t, resp.Balance)
}
