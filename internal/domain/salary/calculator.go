package salary

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Statutory constants. PF splits the employer share into EPF and EPS; the
// employee share is capped because pfBasicCap bounds the contributing Basic.
// ESI applies only while gross stays under esiGrossLimit.
var (
	pfBasicCap      = decimal.NewFromInt(15000)
	pfEmployeeRate  = decimal.NewFromFloat(0.12)
	pfEmployerEPF   = decimal.NewFromFloat(0.0367)
	pfEmployerEPS   = decimal.NewFromFloat(0.0833)
	pfMaxEmployee   = decimal.NewFromInt(1800)
	esiGrossLimit   = decimal.NewFromInt(21000)
	esiEmployeeRate = decimal.NewFromFloat(0.0075)
	esiEmployerRate = decimal.NewFromFloat(0.0325)

	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
	// gross + gross*esiEmployerRate, used to back out gross from CTC.
	esiGrossFactor = decimal.NewFromInt(1).Add(esiEmployerRate)
)

func (c Config) validate() error {
	if c.AnnualCTC.IsNegative() {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrNegativeAnnualCTC)
	}
	if c.LOPDays.IsNegative() {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrNegativeLOPDays)
	}
	if c.DaysInMonth < 1 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrInvalidDaysInMonth)
	}
	return nil
}

// Calculate converts an annual CTC plus attendance data into an itemized
// monthly breakdown. It is pure and deterministic: same Config in, same
// Breakdown out, no I/O, safe to call concurrently.
//
// ESI eligibility is decided from the prorated Basic+HRA estimate, not the
// final gross, so near the ₹21,000 boundary the derived gross can land above
// the limit while ESI still applies. That single-pass estimate is how
// existing payroll history was computed and is kept on purpose; an iterative
// fix would silently change statutory amounts on old records. For the same
// reason, when the special allowance clamps to zero the employer ESI is not
// re-derived even though the employer cost then falls short of monthly CTC.
func Calculate(cfg Config) (Breakdown, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return Breakdown{}, err
	}

	days := decimal.NewFromInt(int64(cfg.DaysInMonth))
	lop := decimal.Max(decimal.Zero, cfg.LOPDays)
	paidDays := decimal.Max(decimal.Zero, days.Sub(lop))
	prorate := func(v decimal.Decimal) decimal.Decimal {
		return v.Mul(paidDays).Div(days)
	}

	monthlyCTC := cfg.AnnualCTC.Div(twelve)

	fullBasic := monthlyCTC.Mul(cfg.BasicPercentage).Div(hundred)
	fullHRA := fullBasic.Mul(cfg.HRAPercentage).Div(hundred)

	basic := prorate(fullBasic).Round(0)
	hra := prorate(fullHRA).Round(0)

	pfBasic := decimal.Min(basic, pfBasicCap)
	employerPF := decimal.Zero
	if cfg.PFEnabled {
		employerPF = pfBasic.Mul(pfEmployerEPF.Add(pfEmployerEPS)).Round(0)
	}

	proratedCTC := prorate(monthlyCTC)
	estimatedGross := basic.Add(hra)
	esiApplicable := cfg.ESIEnabled && estimatedGross.LessThanOrEqual(esiGrossLimit)

	var gross, special, employerESI decimal.Decimal
	if esiApplicable {
		// proratedCTC = gross + employerPF + gross*esiEmployerRate,
		// solved for gross.
		gross = proratedCTC.Sub(employerPF).Div(esiGrossFactor).Round(0)
		employerESI = gross.Mul(esiEmployerRate).Round(0)
		special = gross.Sub(basic).Sub(hra)
	} else {
		special = proratedCTC.Sub(basic).Sub(hra).Sub(employerPF).Round(0)
		gross = basic.Add(hra).Add(special)
	}

	if special.IsNegative() {
		special = decimal.Zero
		gross = basic.Add(hra)
	}

	employeePF := decimal.Zero
	if cfg.PFEnabled {
		employeePF = decimal.Min(pfBasic.Mul(pfEmployeeRate).Round(0), pfMaxEmployee)
	}

	employeeESI := decimal.Zero
	if esiApplicable {
		employeeESI = gross.Mul(esiEmployeeRate).Round(0)
	}

	var professionalTax int64
	if cfg.PTEnabled {
		professionalTax = ProfessionalTax(gross.IntPart(), cfg.State)
	}

	// TDS slab computation is not implemented; the field stays zero so
	// payslips and run totals already carry the line item.
	var tds int64

	totalDeductions := employeePF.IntPart() + employeeESI.IntPart() + professionalTax + tds
	netSalary := gross.IntPart() - totalDeductions

	return Breakdown{
		Basic:            basic.IntPart(),
		HRA:              hra.IntPart(),
		SpecialAllowance: special.IntPart(),
		GrossSalary:      gross.IntPart(),
		EmployerPF:       employerPF.IntPart(),
		EmployerESI:      employerESI.IntPart(),
		EmployeePF:       employeePF.IntPart(),
		EmployeeESI:      employeeESI.IntPart(),
		ProfessionalTax:  professionalTax,
		TDS:              tds,
		TotalDeductions:  totalDeductions,
		NetSalary:        netSalary,
		MonthlyCTC:       monthlyCTC,
		AnnualCTC:        cfg.AnnualCTC,
		LOPDays:          lop,
		DaysInMonth:      cfg.DaysInMonth,
		PaidDays:         paidDays,
	}, nil
}
