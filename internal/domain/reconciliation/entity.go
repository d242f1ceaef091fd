package reconciliation

import "time"

type Kind string

const (
	KindAttendance Kind = "attendance"
	KindBreak      Kind = "break"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is an employee-submitted proposal to correct a recorded attendance
// or break time. Approval is a manual decision; the underlying attendance
// record is never mutated automatically.
type Request struct {
	ID             string
	EmployeeID     string
	AttendanceDate time.Time
	Kind           Kind

	// Attendance corrections ("15:04" wall clock)
	RequestedInTime  *string
	RequestedOutTime *string

	// Break corrections
	RequestedBreakStart *string
	RequestedBreakEnd   *string

	Reason          string
	Status          Status
	ReviewerComment *string
	ReviewedBy      *string
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
}
