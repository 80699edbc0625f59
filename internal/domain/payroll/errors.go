package payroll

import "errors"

var (
	ErrRunNotFound       = errors.New("payroll run not found")
	ErrItemNotFound      = errors.New("payroll item not found")
	ErrInvalidPeriod     = errors.New("invalid payroll period")
	ErrRunInProgress     = errors.New("payroll run already in progress for this period")
	ErrInvalidTransition = errors.New("invalid payroll run status transition")
	ErrRunNotFinalized   = errors.New("payroll run must be finalized first")
	ErrNoActiveEmployees = errors.New("company has no active employees")
)
