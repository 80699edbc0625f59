package salary

import "errors"

// ErrInvalidConfig wraps every configuration validation failure so callers
// can treat them as one class.
var ErrInvalidConfig = errors.New("invalid salary configuration")

var (
	ErrNegativeAnnualCTC  = errors.New("annual CTC must not be negative")
	ErrNegativeLOPDays    = errors.New("LOP days must not be negative")
	ErrInvalidDaysInMonth = errors.New("days in month must be positive")
)
