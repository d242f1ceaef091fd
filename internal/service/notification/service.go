package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/meridian-erp/erp-backend-go/internal/domain/inventory"
	"github.com/meridian-erp/erp-backend-go/internal/domain/leave"
	"github.com/meridian-erp/erp-backend-go/internal/domain/notification"
	"github.com/meridian-erp/erp-backend-go/internal/domain/payslip"
	"github.com/meridian-erp/erp-backend-go/internal/domain/reconciliation"
	"github.com/meridian-erp/erp-backend-go/internal/domain/user"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/sse"
)

// NotificationServiceImpl persists notifications and pushes them to connected
// SSE subscribers. Delivery failures are logged, never propagated: a broken
// notification must not fail the action that triggered it.
type NotificationServiceImpl struct {
	notification.Repository
	users  user.UserRepository
	hub    *sse.Hub
	logger *slog.Logger
}

func NewNotificationService(
	repo notification.Repository,
	userRepo user.UserRepository,
	hub *sse.Hub,
	logger *slog.Logger,
) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		Repository: repo,
		users:      userRepo,
		hub:        hub,
		logger:     logger,
	}
}

func (s *NotificationServiceImpl) ListNotifications(ctx context.Context, recipientID string, page, limit int, unreadOnly bool) ([]notification.Notification, int, error) {
	return s.Repository.ListByRecipient(ctx, recipientID, page, limit, unreadOnly)
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, ids []string, recipientID string) error {
	return s.Repository.MarkAsRead(ctx, ids, recipientID)
}

func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, recipientID string) error {
	return s.Repository.MarkAllAsRead(ctx, recipientID)
}

func (s *NotificationServiceImpl) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	return s.Repository.UnreadCount(ctx, recipientID)
}

// deliver persists one notification and pushes it over SSE.
func (s *NotificationServiceImpl) deliver(ctx context.Context, n *notification.Notification) {
	if err := s.Repository.Create(ctx, n); err != nil {
		s.logger.Error("failed to persist notification",
			slog.String("type", string(n.Type)),
			slog.String("recipient_id", n.RecipientID),
			slog.Any("error", err),
		)
		return
	}

	s.hub.Publish(n.RecipientID, sse.Event{
		UserID: n.RecipientID,
		Name:   string(n.Type),
		Data:   n,
	})
}

// deliverToApprovers fans a notification out to every admin and HR user.
func (s *NotificationServiceImpl) deliverToApprovers(ctx context.Context, build func(recipientID string) *notification.Notification) {
	approvers, err := s.users.GetByRoles(ctx, []user.Role{user.RoleAdmin, user.RoleHR})
	if err != nil {
		s.logger.Error("failed to resolve approvers for notification", slog.Any("error", err))
		return
	}
	for _, approver := range approvers {
		s.deliver(ctx, build(approver.ID))
	}
}

// deliverToEmployee resolves the portal user linked to an employee, if any.
func (s *NotificationServiceImpl) deliverToEmployee(ctx context.Context, employeeID string, build func(recipientID string) *notification.Notification) {
	u, err := s.users.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		// Employees without portal accounts simply receive nothing.
		return
	}
	s.deliver(ctx, build(u.ID))
}

func (s *NotificationServiceImpl) LeaveRequested(ctx context.Context, app leave.LeaveApplication) {
	s.deliverToApprovers(ctx, func(recipientID string) *notification.Notification {
		return &notification.Notification{
			RecipientID: recipientID,
			Type:        notification.TypeLeaveRequested,
			Title:       "New leave application",
			Message:     fmt.Sprintf("%s leave from %s to %s", app.LeaveType, app.FromDate.Format("2006-01-02"), app.ToDate.Format("2006-01-02")),
			Data:        map[string]interface{}{"application_id": app.ID, "employee_id": app.EmployeeID},
		}
	})
}

func (s *NotificationServiceImpl) LeaveDecided(ctx context.Context, app leave.LeaveApplication) {
	notifType := notification.TypeLeaveRejected
	title := "Leave application rejected"
	if app.Status == leave.ApplicationStatusApproved {
		notifType = notification.TypeLeaveApproved
		title = "Leave application approved"
	}

	s.deliverToEmployee(ctx, app.EmployeeID, func(recipientID string) *notification.Notification {
		return &notification.Notification{
			RecipientID: recipientID,
			Type:        notifType,
			Title:       title,
			Message:     fmt.Sprintf("%s leave from %s to %s", app.LeaveType, app.FromDate.Format("2006-01-02"), app.ToDate.Format("2006-01-02")),
			Data:        map[string]interface{}{"application_id": app.ID},
		}
	})
}

func (s *NotificationServiceImpl) ReconciliationRequested(ctx context.Context, req reconciliation.Request) {
	s.deliverToApprovers(ctx, func(recipientID string) *notification.Notification {
		return &notification.Notification{
			RecipientID: recipientID,
			Type:        notification.TypeReconciliationRequested,
			Title:       "New reconciliation request",
			Message:     fmt.Sprintf("%s correction for %s", req.Kind, req.AttendanceDate.Format("2006-01-02")),
			Data:        map[string]interface{}{"request_id": req.ID, "employee_id": req.EmployeeID},
		}
	})
}

func (s *NotificationServiceImpl) ReconciliationDecided(ctx context.Context, req reconciliation.Request) {
	notifType := notification.TypeReconciliationRejected
	title := "Reconciliation request rejected"
	if req.Status == reconciliation.StatusApproved {
		notifType = notification.TypeReconciliationApproved
		title = "Reconciliation request approved"
	}

	s.deliverToEmployee(ctx, req.EmployeeID, func(recipientID string) *notification.Notification {
		return &notification.Notification{
			RecipientID: recipientID,
			Type:        notifType,
			Title:       title,
			Message:     fmt.Sprintf("%s correction for %s", req.Kind, req.AttendanceDate.Format("2006-01-02")),
			Data:        map[string]interface{}{"request_id": req.ID},
		}
	})
}

func (s *NotificationServiceImpl) PayslipGenerated(ctx context.Context, p payslip.Payslip) {
	s.deliverToEmployee(ctx, p.EmployeeID, func(recipientID string) *notification.Notification {
		return &notification.Notification{
			RecipientID: recipientID,
			Type:        notification.TypePayslipGenerated,
			Title:       "Payslip available",
			Message:     fmt.Sprintf("Your payslip for %d/%d is ready", p.PeriodMonth, p.PeriodYear),
			Data:        map[string]interface{}{"payslip_id": p.ID},
		}
	})
}

func (s *NotificationServiceImpl) WarrantyExpiring(ctx context.Context, expiring []inventory.ExpiringWarranty) {
	if len(expiring) == 0 {
		return
	}

	s.deliverToApprovers(ctx, func(recipientID string) *notification.Notification {
		machines := make([]map[string]interface{}, 0, len(expiring))
		for _, e := range expiring {
			machines = append(machines, map[string]interface{}{
				"machine_id": e.Machine.ID,
				"serial":     e.Machine.Serial,
				"expires_at": e.ExpiresAt.Format("2006-01-02"),
			})
		}
		return &notification.Notification{
			RecipientID: recipientID,
			Type:        notification.TypeWarrantyExpiring,
			Title:       "Warranties expiring soon",
			Message:     fmt.Sprintf("%d machine warranties expire within 30 days", len(expiring)),
			Data:        map[string]interface{}{"machines": machines},
		}
	})
}
