package document

import "errors"

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrChallanNotFound = errors.New("delivery challan not found")
	ErrNumberExists    = errors.New("document number already exists")
	ErrInvoiceVoid     = errors.New("invoice is void")
)
