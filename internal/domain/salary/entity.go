package salary

import (
	"github.com/shopspring/decimal"
)

// Default salary structure applied when a field is left at its zero value.
const (
	DefaultBasicPercentage = 40
	DefaultHRAPercentage   = 50
	DefaultDaysInMonth     = 30
	DefaultState           = "Karnataka"
)

// Config is the input to one salary calculation. Amounts are rupees,
// percentages are whole percents (40 means 40%). HRAPercentage is a percent
// of Basic, not of CTC. LOPDays may be fractional (half-day granularity).
type Config struct {
	AnnualCTC       decimal.Decimal
	BasicPercentage decimal.Decimal
	HRAPercentage   decimal.Decimal
	PFEnabled       bool
	ESIEnabled      bool
	PTEnabled       bool
	State           string
	LOPDays         decimal.Decimal
	DaysInMonth     int
}

// NewConfig returns a Config with the default salary structure and all
// statutory deductions enabled.
func NewConfig(annualCTC decimal.Decimal) Config {
	return Config{
		AnnualCTC:       annualCTC,
		BasicPercentage: decimal.NewFromInt(DefaultBasicPercentage),
		HRAPercentage:   decimal.NewFromInt(DefaultHRAPercentage),
		PFEnabled:       true,
		ESIEnabled:      true,
		PTEnabled:       true,
		State:           DefaultState,
		DaysInMonth:     DefaultDaysInMonth,
	}
}

func (c Config) withDefaults() Config {
	if c.BasicPercentage.IsZero() {
		c.BasicPercentage = decimal.NewFromInt(DefaultBasicPercentage)
	}
	if c.HRAPercentage.IsZero() {
		c.HRAPercentage = decimal.NewFromInt(DefaultHRAPercentage)
	}
	if c.State == "" {
		c.State = DefaultState
	}
	if c.DaysInMonth == 0 {
		c.DaysInMonth = DefaultDaysInMonth
	}
	return c
}

// Breakdown is one employee's fully itemized monthly salary. All currency
// fields are whole rupees after rounding. Employer contributions are
// informational and not part of the employee's deductions.
type Breakdown struct {
	Basic            int64 `json:"basic"`
	HRA              int64 `json:"hra"`
	SpecialAllowance int64 `json:"special_allowance"`
	GrossSalary      int64 `json:"gross_salary"`

	EmployerPF  int64 `json:"employer_pf"`
	EmployerESI int64 `json:"employer_esi"`

	EmployeePF      int64 `json:"employee_pf"`
	EmployeeESI     int64 `json:"employee_esi"`
	ProfessionalTax int64 `json:"professional_tax"`
	TDS             int64 `json:"tds"`

	TotalDeductions int64 `json:"total_deductions"`
	NetSalary       int64 `json:"net_salary"`

	MonthlyCTC  decimal.Decimal `json:"monthly_ctc"`
	AnnualCTC   decimal.Decimal `json:"annual_ctc"`
	LOPDays     decimal.Decimal `json:"lop_days"`
	DaysInMonth int             `json:"days_in_month"`
	PaidDays    decimal.Decimal `json:"paid_days"`
}
