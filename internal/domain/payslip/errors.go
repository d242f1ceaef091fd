package payslip

import "errors"

var (
	ErrPayslipNotFound      = errors.New("payslip not found")
	ErrPayslipAlreadyExists = errors.New("payslip already exists for this period")
	ErrPayslipAlreadyPaid   = errors.New("payslip already paid")
)
