package settings

import "errors"

var (
	ErrProfileNotFound  = errors.New("company profile not configured")
	ErrSettingsNotFound = errors.New("financial settings not configured")
)
