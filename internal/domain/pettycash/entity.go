package pettycash

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID        string
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// Transaction is one petty-cash ledger entry. ReferenceKey ties an entry back
// to the record that caused it (e.g. "payslip_<id>"), which is what the
// compensating deletion path looks up.
type Transaction struct {
	ID           string
	AccountID    string
	Amount       decimal.Decimal
	Direction    Direction
	ReferenceKey string
	Note         *string
	CreatedAt    time.Time
}

// PayslipReferenceKey derives the ledger reference key for a payslip.
func PayslipReferenceKey(payslipID string) string {
	return "payslip_" + payslipID
}
