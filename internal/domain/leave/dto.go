package leave

import (
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/pkg/validator"
)

type CreateLeaveTypeRequest struct {
	Name string `json:"leave_type_name"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_name",
			Message: "leave_type_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_name",
			Message: "leave_type_name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateLeaveGroupRequest struct {
	Name     string   `json:"leave_group_name"`
	Policies []Policy `json:"policies"`
}

func (r *CreateLeaveGroupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_group_name",
			Message: "leave_group_name is required",
		})
	}

	seen := make(map[string]bool)
	for _, p := range r.Policies {
		if validator.IsEmpty(p.LeaveTypeName) {
			errs = append(errs, validator.ValidationError{
				Field:   "policies",
				Message: "every policy requires a leave_type_name",
			})
			continue
		}
		if seen[p.LeaveTypeName] {
			errs = append(errs, validator.ValidationError{
				Field:   "policies",
				Message: "duplicate policy for leave type " + p.LeaveTypeName,
			})
		}
		seen[p.LeaveTypeName] = true
		if p.AllowedBalance < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "policies",
				Message: "allowed_balance must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveGroupRequest struct {
	ID       string    `json:"-"`
	Name     *string   `json:"leave_group_name,omitempty"`
	Policies *[]Policy `json:"policies,omitempty"`
}

func (r *UpdateLeaveGroupRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_group_name",
			Message: "leave_group_name must not be empty",
		})
	}

	if r.Policies != nil {
		for _, p := range *r.Policies {
			if validator.IsEmpty(p.LeaveTypeName) {
				errs = append(errs, validator.ValidationError{
					Field:   "policies",
					Message: "every policy requires a leave_type_name",
				})
			}
			if p.AllowedBalance < 0 {
				errs = append(errs, validator.ValidationError{
					Field:   "policies",
					Message: "allowed_balance must not be negative",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateApplicationRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	FromDate   string `json:"from_date"`
	ToDate     string `json:"to_date"`
	Reason     string `json:"reason"`
}

func (r *CreateApplicationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be in YYYY-MM-DD format",
		})
	}
	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be in YYYY-MM-DD format",
		})
	}
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must not be before from_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DateRange returns the parsed dates. Validate must have passed.
func (r *CreateApplicationRequest) DateRange() (time.Time, time.Time) {
	from, _ := validator.IsValidDate(r.FromDate)
	to, _ := validator.IsValidDate(r.ToDate)
	return from, to
}

type UpdateApplicationRequest struct {
	ID        string  `json:"-"`
	LeaveType *string `json:"leave_type,omitempty"`
	FromDate  *string `json:"from_date,omitempty"`
	ToDate    *string `json:"to_date,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *UpdateApplicationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LeaveType != nil && validator.IsEmpty(*r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must not be empty",
		})
	}
	if r.FromDate != nil {
		if _, ok := validator.IsValidDate(*r.FromDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from_date",
				Message: "from_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.ToDate != nil {
		if _, ok := validator.IsValidDate(*r.ToDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to_date",
				Message: "to_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideApplicationRequest struct {
	ApplicationID   string  `json:"application_id"`
	ApproverComment *string `json:"approver_comment,omitempty"`
}

func (r *DecideApplicationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ApplicationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "application_id",
			Message: "application_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApplicationFilter struct {
	EmployeeID *string
	LeaveType  *string
	Status     *string
	FromDate   *time.Time
	ToDate     *time.Time
	Page       int
	Limit      int
}

// BalanceResponse mirrors the live remaining-balance readout the portal shows
// while an application form is being filled in.
type BalanceResponse struct {
	EmployeeID     string   `json:"employee_id"`
	LeaveType      string   `json:"leave_type"`
	Year           int      `json:"year"`
	AllowedBalance *float64 `json:"allowed_balance,omitempty"`
	UsedDays       *float64 `json:"used_days,omitempty"`
	Balance        *float64 `json:"balance,omitempty"`
	PolicyFound    bool     `json:"policy_found"`
}
