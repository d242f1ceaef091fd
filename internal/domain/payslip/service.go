package payslip

import (
	"context"
)

// PayslipService covers payslip issuance, payment, and removal. Payment and
// removal both touch the petty cash ledger atomically.
type PayslipService interface {
	CreatePayslip(ctx context.Context, req CreatePayslipRequest) (Payslip, error)
	GetPayslip(ctx context.Context, id string) (Payslip, error)
	ListPayslips(ctx context.Context, filter PayslipFilter) ([]Payslip, int64, error)
	PayPayslip(ctx context.Context, req PayPayslipRequest) (Payslip, error)
	DeletePayslip(ctx context.Context, id string) error
	RenderPDF(ctx context.Context, id string) ([]byte, error)
}
