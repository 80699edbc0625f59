package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payease-hq/payease-backend-go/internal/domain/salary"
)

func TestFormatRupees(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{15000, "15,000"},
		{100000, "1,00,000"},
		{1234567, "12,34,567"},
		{12500000, "1,25,00,000"},
		{-48200, "-48,200"},
	}
	for _, tt := range tests {
		if got := FormatRupees(tt.amount); got != tt.want {
			t.Errorf("FormatRupees(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestRenderPayslip(t *testing.T) {
	out, err := RenderPayslip(PayslipData{
		CompanyName:  "Meridian Textiles Pvt Ltd",
		EmployeeName: "Asha Rao",
		EmployeeCode: "PE-0042",
		Email:        "asha@example.com",
		Month:        time.April,
		Year:         2026,
		Breakdown: salary.Breakdown{
			Basic:            20000,
			HRA:              10000,
			SpecialAllowance: 18200,
			GrossSalary:      48200,
			EmployerPF:       1800,
			EmployeePF:       1800,
			ProfessionalTax:  200,
			TotalDeductions:  2000,
			NetSalary:        46200,
			MonthlyCTC:       decimal.NewFromInt(50000),
			AnnualCTC:        decimal.NewFromInt(600000),
			PaidDays:         decimal.NewFromInt(30),
			DaysInMonth:      30,
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}
