package pettycash

import (
	"github.com/shopspring/decimal"

	"github.com/meridian-erp/erp-backend-go/internal/pkg/validator"
)

type CreateAccountRequest struct {
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

func (r *CreateAccountRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.OpeningBalance.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "opening_balance",
			Message: "opening_balance must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateTransactionRequest struct {
	AccountID    string          `json:"account_id"`
	Amount       decimal.Decimal `json:"amount"`
	Direction    string          `json:"direction"`
	ReferenceKey string          `json:"reference_key"`
	Note         *string         `json:"note,omitempty"`
}

func (r *CreateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AccountID) {
		errs = append(errs, validator.ValidationError{
			Field:   "account_id",
			Message: "account_id is required",
		})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}
	if !validator.IsInSlice(r.Direction, []string{string(DirectionCredit), string(DirectionDebit)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "direction",
			Message: "direction must be credit or debit",
		})
	}
	if validator.IsEmpty(r.ReferenceKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "reference_key",
			Message: "reference_key is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
