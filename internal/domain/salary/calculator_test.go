package salary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calc(t *testing.T, cfg Config) Breakdown {
	t.Helper()
	b, err := Calculate(cfg)
	require.NoError(t, err)
	return b
}

func assertInvariants(t *testing.T, b Breakdown) {
	t.Helper()
	assert.Equal(t, b.GrossSalary, b.Basic+b.HRA+b.SpecialAllowance, "gross = basic + hra + special")
	assert.Equal(t, b.TotalDeductions, b.EmployeePF+b.EmployeeESI+b.ProfessionalTax+b.TDS, "deduction total")
	assert.Equal(t, b.NetSalary, b.GrossSalary-b.TotalDeductions, "net = gross - deductions")
	assert.GreaterOrEqual(t, b.NetSalary, int64(0), "net salary non-negative")
	assert.GreaterOrEqual(t, b.SpecialAllowance, int64(0), "special allowance non-negative")
	assert.LessOrEqual(t, b.EmployeePF, int64(1800), "employee PF statutory cap")
}

func TestCalculate_StandardCTCNoESI(t *testing.T) {
	b := calc(t, NewConfig(decimal.NewFromInt(600000)))

	assert.Equal(t, int64(20000), b.Basic)
	assert.Equal(t, int64(10000), b.HRA)
	assert.Equal(t, int64(18200), b.SpecialAllowance)
	assert.Equal(t, int64(48200), b.GrossSalary)
	assert.Equal(t, int64(1800), b.EmployerPF)
	assert.Equal(t, int64(0), b.EmployerESI)
	assert.Equal(t, int64(1800), b.EmployeePF)
	assert.Equal(t, int64(0), b.EmployeeESI)
	assert.Equal(t, int64(200), b.ProfessionalTax)
	assert.Equal(t, int64(0), b.TDS)
	assert.Equal(t, int64(46200), b.NetSalary)
	assertInvariants(t, b)
}

func TestCalculate_LowCTCWithESI(t *testing.T) {
	b := calc(t, NewConfig(decimal.NewFromInt(300000)))

	assert.Equal(t, int64(10000), b.Basic)
	assert.Equal(t, int64(5000), b.HRA)
	assert.Equal(t, int64(1200), b.EmployerPF)
	// gross solved from 23800 = gross * 1.0325
	assert.Equal(t, int64(23051), b.GrossSalary)
	assert.Equal(t, int64(749), b.EmployerESI)
	assert.Equal(t, int64(1200), b.EmployeePF)
	assert.Equal(t, int64(173), b.EmployeeESI)
	assert.Equal(t, int64(200), b.ProfessionalTax)
	// employer cost adds back up to monthly CTC
	assert.Equal(t, int64(25000), b.GrossSalary+b.EmployerPF+b.EmployerESI)
	assertInvariants(t, b)
}

func TestCalculate_HighCTCPFCapped(t *testing.T) {
	b := calc(t, NewConfig(decimal.NewFromInt(1500000)))

	assert.Equal(t, int64(50000), b.Basic)
	assert.Equal(t, int64(25000), b.HRA)
	assert.Equal(t, int64(1800), b.EmployerPF, "employer PF computed on capped PF basic")
	assert.Equal(t, int64(1800), b.EmployeePF)
	assert.Equal(t, int64(0), b.EmployeeESI, "no ESI above the gross limit")
	assert.Equal(t, int64(200), b.ProfessionalTax)
	assert.Equal(t, int64(121200), b.NetSalary)
	assertInvariants(t, b)
}

func TestCalculate_TopHeavyStructureClampsSpecialWithESI(t *testing.T) {
	cfg := NewConfig(decimal.NewFromInt(150000))
	cfg.BasicPercentage = decimal.NewFromInt(70)
	cfg.HRAPercentage = decimal.NewFromInt(70)
	b := calc(t, cfg)

	assert.Equal(t, int64(8750), b.Basic)
	assert.Equal(t, int64(6125), b.HRA)
	// derived gross 11090 sits below basic+hra, so special clamps to zero
	// and gross becomes basic+hra
	assert.Equal(t, int64(0), b.SpecialAllowance)
	assert.Equal(t, int64(14875), b.GrossSalary)
	assert.Equal(t, b.Basic+b.HRA, b.GrossSalary)
	// employer ESI stays on the pre-clamp derived gross of 11090
	assert.Equal(t, int64(360), b.EmployerESI)
	assert.Equal(t, int64(1050), b.EmployerPF)
	assert.Equal(t, int64(1050), b.EmployeePF)
	// employee ESI follows the clamped gross: 14875 * 0.75%
	assert.Equal(t, int64(112), b.EmployeeESI)
	assert.Equal(t, int64(0), b.ProfessionalTax)
	assert.Equal(t, int64(13713), b.NetSalary)
	assertInvariants(t, b)
}

func TestCalculate_TopHeavyStructureClampsSpecialNoESI(t *testing.T) {
	cfg := NewConfig(decimal.NewFromInt(300000))
	cfg.BasicPercentage = decimal.NewFromInt(70)
	cfg.HRAPercentage = decimal.NewFromInt(70)
	b := calc(t, cfg)

	assert.Equal(t, int64(17500), b.Basic)
	assert.Equal(t, int64(12250), b.HRA)
	assert.Equal(t, int64(0), b.SpecialAllowance, "25000 - 17500 - 12250 - 1800 is negative")
	assert.Equal(t, int64(29750), b.GrossSalary)
	assert.Equal(t, int64(1800), b.EmployerPF, "PF basic capped at 15000")
	assert.Equal(t, int64(0), b.EmployerESI, "basic+hra estimate above the ESI limit")
	assert.Equal(t, int64(1800), b.EmployeePF)
	assert.Equal(t, int64(200), b.ProfessionalTax)
	assert.Equal(t, int64(27750), b.NetSalary)
	assertInvariants(t, b)
}

func TestCalculate_SingleLOPDayProration(t *testing.T) {
	cfg := NewConfig(decimal.NewFromInt(360000))
	cfg.LOPDays = decimal.NewFromInt(1)
	cfg.DaysInMonth = 30
	b := calc(t, cfg)

	assert.True(t, decimal.NewFromInt(29).Equal(b.PaidDays))
	assert.Equal(t, int64(11600), b.Basic)
	assert.Equal(t, int64(5800), b.HRA)
	assertInvariants(t, b)
}

func TestCalculate_HalfDayLOP(t *testing.T) {
	cfg := NewConfig(decimal.NewFromInt(360000))
	cfg.LOPDays = decimal.NewFromFloat(1.5)
	cfg.DaysInMonth = 30
	b := calc(t, cfg)

	assert.True(t, decimal.NewFromFloat(28.5).Equal(b.PaidDays))
	// 12000 * 28.5/30 = 11400
	assert.Equal(t, int64(11400), b.Basic)
	assert.Equal(t, int64(5700), b.HRA)
	assertInvariants(t, b)
}

func TestCalculate_FullMonthLOP(t *testing.T) {
	cfg := NewConfig(decimal.NewFromInt(600000))
	cfg.LOPDays = decimal.NewFromInt(30)
	cfg.DaysInMonth = 30
	b := calc(t, cfg)

	assert.True(t, b.PaidDays.IsZero())
	assert.Equal(t, int64(0), b.Basic)
	assert.Equal(t, int64(0), b.HRA)
	assert.Equal(t, int64(0), b.SpecialAllowance)
	assert.Equal(t, int64(0), b.GrossSalary)
	assert.Equal(t, int64(0), b.EmployeePF)
	assert.Equal(t, int64(0), b.EmployeeESI)
	assert.Equal(t, int64(0), b.ProfessionalTax)
	assert.Equal(t, int64(0), b.NetSalary)
}

func TestCalculate_LOPExceedsDaysInMonthClampsToZero(t *testing.T) {
	cfg := NewConfig(decimal.NewFromInt(600000))
	cfg.LOPDays = decimal.NewFromInt(45)
	cfg.DaysInMonth = 30
	b := calc(t, cfg)

	assert.True(t, b.PaidDays.IsZero(), "paid days clamp at zero, never negative")
	assert.Equal(t, int64(0), b.GrossSalary)
	assert.Equal(t, int64(0), b.NetSalary)
}

func TestCalculate_ZeroCTC(t *testing.T) {
	b := calc(t, NewConfig(decimal.Zero))

	assert.Equal(t, int64(0), b.Basic)
	assert.Equal(t, int64(0), b.HRA)
	assert.Equal(t, int64(0), b.SpecialAllowance)
	assert.Equal(t, int64(0), b.GrossSalary)
	assert.Equal(t, int64(0), b.EmployerPF)
	assert.Equal(t, int64(0), b.EmployerESI)
	assert.Equal(t, int64(0), b.TotalDeductions)
	assert.Equal(t, int64(0), b.NetSalary)
	assert.True(t, b.MonthlyCTC.IsZero())
	assert.True(t, decimal.NewFromInt(30).Equal(b.PaidDays))
}

func TestCalculate_StatutoryTogglesOff(t *testing.T) {
	cfg := NewConfig(decimal.NewFromInt(600000))
	cfg.PFEnabled = false
	cfg.ESIEnabled = false
	cfg.PTEnabled = false
	b := calc(t, cfg)

	assert.Equal(t, int64(0), b.EmployerPF)
	assert.Equal(t, int64(0), b.EmployeePF)
	assert.Equal(t, int64(0), b.EmployeeESI)
	assert.Equal(t, int64(0), b.ProfessionalTax)
	// without employer PF the whole monthly CTC becomes gross
	assert.Equal(t, int64(50000), b.GrossSalary)
	assert.Equal(t, b.GrossSalary, b.NetSalary)
	assertInvariants(t, b)
}

func TestCalculate_StateComparison(t *testing.T) {
	cases := []struct {
		state string
		want  int64
	}{
		{"Karnataka", 200},
		{"Maharashtra", 200},
		{"Tamil Nadu", 208},
		{"Telangana", 200},
		{"Gujarat", 0},
		{"Rajasthan", 0},
		{"Delhi", 0},
		{"Goa", 200}, // unrecognized, Karnataka fallback
	}
	for _, c := range cases {
		cfg := NewConfig(decimal.NewFromInt(600000))
		cfg.State = c.state
		b := calc(t, cfg)
		assert.Equal(t, c.want, b.ProfessionalTax, "state %s", c.state)
	}
}

func TestCalculate_InvalidConfig(t *testing.T) {
	neg := NewConfig(decimal.NewFromInt(-1))
	_, err := Calculate(neg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, ErrNegativeAnnualCTC)

	lop := NewConfig(decimal.NewFromInt(600000))
	lop.LOPDays = decimal.NewFromInt(-2)
	_, err = Calculate(lop)
	assert.ErrorIs(t, err, ErrNegativeLOPDays)

	days := NewConfig(decimal.NewFromInt(600000))
	days.DaysInMonth = -5
	_, err = Calculate(days)
	assert.ErrorIs(t, err, ErrInvalidDaysInMonth)
}

func TestCalculate_InvariantsAcrossRange(t *testing.T) {
	ctcs := []int64{0, 1, 999, 120000, 240000, 252000, 300000, 360000, 480000,
		600000, 630000, 1200000, 1500000, 3000000, 10000000}
	lops := []float64{0, 0.5, 1, 7, 15.5, 29, 30, 31}
	daysInMonth := []int{28, 29, 30, 31}

	for _, ctc := range ctcs {
		for _, lop := range lops {
			for _, dim := range daysInMonth {
				cfg := NewConfig(decimal.NewFromInt(ctc))
				cfg.LOPDays = decimal.NewFromFloat(lop)
				cfg.DaysInMonth = dim
				b := calc(t, cfg)

				assertInvariants(t, b)
				assert.True(t, cfg.AnnualCTC.Div(decimal.NewFromInt(12)).Equal(b.MonthlyCTC))

				wantPaid := decimal.Max(decimal.Zero,
					decimal.NewFromInt(int64(dim)).Sub(cfg.LOPDays))
				assert.True(t, wantPaid.Equal(b.PaidDays),
					"ctc=%d lop=%v dim=%d", ctc, lop, dim)
				if lop >= float64(dim) {
					assert.Equal(t, int64(0), b.GrossSalary)
				}
			}
		}
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	cfg := NewConfig(decimal.NewFromInt(725000))
	cfg.LOPDays = decimal.NewFromFloat(2.5)
	cfg.DaysInMonth = 31

	first := calc(t, cfg)
	second := calc(t, cfg)
	assert.Equal(t, first, second, "pure function, no hidden state")
}
