package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft Status = "draft"
	StatusPaid  Status = "paid"
)

type Payslip struct {
	ID          string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int
	Basic       decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetPay      decimal.Decimal
	Status      Status
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// Net computes basic + allowances − deductions.
func (p Payslip) Net() decimal.Decimal {
	return p.Basic.Add(p.Allowances).Sub(p.Deductions)
}
