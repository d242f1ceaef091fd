package leave

import "errors"

var (
	ErrApplicationNotFound = errors.New("leave application not found")
	ErrGroupNotFound       = errors.New("leave group not found")
	ErrTypeNotFound        = errors.New("leave type not found")
	ErrTypeNameExists      = errors.New("leave type name already exists")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
)
