package employee

import (
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Code         string  `json:"code"`
	FullName     string  `json:"full_name"`
	Department   string  `json:"department"`
	Branch       string  `json:"branch"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	LeaveGroupID *string `json:"leave_group_id,omitempty"`
	HireDate     string  `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must match the format 0000-0000",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if r.LeaveGroupID != nil && !validator.IsValidUUID(*r.LeaveGroupID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_group_id",
			Message: "leave_group_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HireDateTime returns the parsed hire date. Validate must have passed.
func (r *CreateEmployeeRequest) HireDateTime() time.Time {
	t, _ := validator.IsValidDate(r.HireDate)
	return t
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	FullName     *string `json:"full_name,omitempty"`
	Department   *string `json:"department,omitempty"`
	Branch       *string `json:"branch,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	LeaveGroupID *string `json:"leave_group_id,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil {
		if validator.IsEmpty(*r.FullName) {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not be empty",
			})
		}
		if len(*r.FullName) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not exceed 255 characters",
			})
		}
	}

	if r.LeaveGroupID != nil && *r.LeaveGroupID != "" && !validator.IsValidUUID(*r.LeaveGroupID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_group_id",
			Message: "leave_group_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeFilter narrows List queries server-side; the store is never scanned
// whole and filtered in memory.
type EmployeeFilter struct {
	Name       *string
	Department *string
	Branch     *string
	Status     *string
	Page       int
	Limit      int
}
