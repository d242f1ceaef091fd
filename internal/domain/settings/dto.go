package settings

import (
	"github.com/meridian-erp/erp-backend-go/internal/pkg/validator"
)

type UpsertCompanyProfileRequest struct {
	CompanyName string  `json:"company_name"`
	Address     *string `json:"address,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Email       *string `json:"email,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
}

func (r *UpsertCompanyProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyName) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_name",
			Message: "company_name is required",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpsertFinancialSettingsRequest struct {
	CurrencyCode        string `json:"currency_code"`
	FinancialYearStart  int    `json:"financial_year_start"`
	InvoiceNumberPrefix string `json:"invoice_number_prefix"`
}

func (r *UpsertFinancialSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.CurrencyCode) != 3 {
		errs = append(errs, validator.ValidationError{
			Field:   "currency_code",
			Message: "currency_code must be a 3-letter ISO code",
		})
	}
	if r.FinancialYearStart < 1 || r.FinancialYearStart > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "financial_year_start",
			Message: "financial_year_start must be a month between 1 and 12",
		})
	}
	if validator.IsEmpty(r.InvoiceNumberPrefix) {
		errs = append(errs, validator.ValidationError{
			Field:   "invoice_number_prefix",
			Message: "invoice_number_prefix is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
