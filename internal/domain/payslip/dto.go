package payslip

import (
	"github.com/shopspring/decimal"

	"github.com/meridian-erp/erp-backend-go/internal/pkg/validator"
)

type CreatePayslipRequest struct {
	EmployeeID  string          `json:"employee_id"`
	PeriodMonth int             `json:"period_month"`
	PeriodYear  int             `json:"period_year"`
	Basic       decimal.Decimal `json:"basic"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
}

func (r *CreatePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "period_month",
			Message: "period_month must be between 1 and 12",
		})
	}
	if r.PeriodYear < 2000 {
		errs = append(errs, validator.ValidationError{
			Field:   "period_year",
			Message: "period_year must be a plausible year",
		})
	}
	if r.Basic.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic",
			Message: "basic must not be negative",
		})
	}
	if r.Allowances.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "allowances",
			Message: "allowances must not be negative",
		})
	}
	if r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "deductions",
			Message: "deductions must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayPayslipRequest struct {
	PayslipID string `json:"payslip_id"`
	AccountID string `json:"account_id"`
}

func (r *PayPayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PayslipID) {
		errs = append(errs, validator.ValidationError{
			Field:   "payslip_id",
			Message: "payslip_id is required",
		})
	}
	if validator.IsEmpty(r.AccountID) {
		errs = append(errs, validator.ValidationError{
			Field:   "account_id",
			Message: "account_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayslipFilter struct {
	EmployeeID  *string
	PeriodMonth *int
	PeriodYear  *int
	Status      *string
	Page        int
	Limit       int
}
