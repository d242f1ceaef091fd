package reconciliation

import "errors"

var (
	ErrRequestNotFound = errors.New("reconciliation request not found")
)
