package reconciliation

import (
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	EmployeeID     string `json:"employee_id"`
	AttendanceDate string `json:"attendance_date"`
	Kind           string `json:"kind"`

	RequestedInTime  *string `json:"requested_in_time,omitempty"`
	RequestedOutTime *string `json:"requested_out_time,omitempty"`

	RequestedBreakStart *string `json:"requested_break_start,omitempty"`
	RequestedBreakEnd   *string `json:"requested_break_end,omitempty"`

	Reason string `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.AttendanceDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_date",
			Message: "attendance_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.AttendanceDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_date",
			Message: "attendance_date must be in YYYY-MM-DD format",
		})
	}

	switch Kind(r.Kind) {
	case KindAttendance:
		if r.RequestedInTime == nil && r.RequestedOutTime == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "requested_in_time",
				Message: "an attendance correction requires requested_in_time or requested_out_time",
			})
		}
	case KindBreak:
		if r.RequestedBreakStart == nil || r.RequestedBreakEnd == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "requested_break_start",
				Message: "a break correction requires both requested_break_start and requested_break_end",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be attendance or break",
		})
	}

	for field, value := range map[string]*string{
		"requested_in_time":     r.RequestedInTime,
		"requested_out_time":    r.RequestedOutTime,
		"requested_break_start": r.RequestedBreakStart,
		"requested_break_end":   r.RequestedBreakEnd,
	} {
		if value != nil && !validator.IsValidClockTime(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Date returns the parsed attendance date. Validate must have passed.
func (r *CreateRequestRequest) Date() time.Time {
	t, _ := validator.IsValidDate(r.AttendanceDate)
	return t
}

type DecideRequestRequest struct {
	RequestID       string  `json:"request_id"`
	ReviewerComment *string `json:"reviewer_comment,omitempty"`
}

func (r *DecideRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestFilter struct {
	EmployeeID *string
	Kind       *string
	Status     *string
	FromDate   *time.Time
	ToDate     *time.Time
	Page       int
	Limit      int
}
