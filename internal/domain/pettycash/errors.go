package pettycash

import "errors"

var (
	ErrAccountNotFound     = errors.New("petty cash account not found")
	ErrTransactionNotFound = errors.New("petty cash transaction not found")
	ErrInsufficientFunds   = errors.New("insufficient account funds")
)
