package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee carries the salary structure the payroll run feeds into the
// calculator. BasicPercentage and HRAPercentage are optional per-employee
// overrides; when nil the company defaults apply.
type Employee struct {
	ID               string
	CompanyID        string
	Code             string
	Name             string
	Email            string
	Phone            *string
	Designation      *string
	HireDate         time.Time
	AnnualCTC        decimal.Decimal
	BasicPercentage  *decimal.Decimal
	HRAPercentage    *decimal.Decimal
	PaidLeaveBalance decimal.Decimal
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
