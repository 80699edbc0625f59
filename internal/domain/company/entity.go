package company

import (
	"time"

	"github.com/shopspring/decimal"
)

type Company struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayrollSettings is the company-level salary structure: which statutory
// deductions apply, which state's professional tax slab to use, and the
// default Basic/HRA percentages employees inherit.
type PayrollSettings struct {
	ID              string
	CompanyID       string
	State           string
	PFEnabled       bool
	ESIEnabled      bool
	PTEnabled       bool
	BasicPercentage decimal.Decimal
	HRAPercentage   decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
