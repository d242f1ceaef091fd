package notification

import "time"

type NotificationType string

const (
	TypeLeaveRequested          NotificationType = "leave_requested"
	TypeLeaveApproved           NotificationType = "leave_approved"
	TypeLeaveRejected           NotificationType = "leave_rejected"
	TypeReconciliationRequested NotificationType = "reconciliation_requested"
	TypeReconciliationApproved  NotificationType = "reconciliation_approved"
	TypeReconciliationRejected  NotificationType = "reconciliation_rejected"
	TypePayslipGenerated        NotificationType = "payslip_generated"
	TypeWarrantyExpiring        NotificationType = "warranty_expiring"
)

type Notification struct {
	ID          string
	RecipientID string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
