package payroll

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payease-hq/payease-backend-go/internal/config"
	"github.com/payease-hq/payease-backend-go/internal/domain/attendance"
	"github.com/payease-hq/payease-backend-go/internal/domain/company"
	"github.com/payease-hq/payease-backend-go/internal/domain/employee"
	"github.com/payease-hq/payease-backend-go/internal/domain/payroll"
	"github.com/payease-hq/payease-backend-go/internal/domain/salary"
	"github.com/payease-hq/payease-backend-go/internal/pkg/database"
	"github.com/payease-hq/payease-backend-go/internal/pkg/email"
	"github.com/payease-hq/payease-backend-go/internal/repository/postgresql"
)

func testSettings() company.PayrollSettings {
	return company.PayrollSettings{
		CompanyID:       "co-1",
		State:           "Maharashtra",
		PFEnabled:       true,
		ESIEnabled:      true,
		PTEnabled:       true,
		BasicPercentage: decimal.NewFromInt(40),
		HRAPercentage:   decimal.NewFromInt(50),
	}
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:        "emp-1",
		CompanyID: "co-1",
		Code:      "PE-0001",
		AnnualCTC: decimal.NewFromInt(600000),
	}
}

func testSummary() attendance.MonthlySummary {
	return attendance.MonthlySummary{
		EmployeeID:  "emp-1",
		Year:        2026,
		Month:       time.April,
		DaysInMonth: 30,
		LOPDays:     decimal.NewFromInt(2),
	}
}

func TestBuildSalaryConfigUsesCompanyDefaults(t *testing.T) {
	cfg := buildSalaryConfig(testSettings(), testEmployee(), testSummary())

	assert.True(t, cfg.AnnualCTC.Equal(decimal.NewFromInt(600000)))
	assert.True(t, cfg.BasicPercentage.Equal(decimal.NewFromInt(40)))
	assert.True(t, cfg.HRAPercentage.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "Maharashtra", cfg.State)
	assert.True(t, cfg.LOPDays.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, 30, cfg.DaysInMonth)
	assert.True(t, cfg.PFEnabled)
	assert.True(t, cfg.ESIEnabled)
	assert.True(t, cfg.PTEnabled)
}

func TestBuildSalaryConfigEmployeeOverridesWin(t *testing.T) {
	emp := testEmployee()
	basic := decimal.NewFromInt(45)
	hra := decimal.NewFromInt(40)
	emp.BasicPercentage = &basic
	emp.HRAPercentage = &hra

	cfg := buildSalaryConfig(testSettings(), emp, testSummary())

	assert.True(t, cfg.BasicPercentage.Equal(basic))
	assert.True(t, cfg.HRAPercentage.Equal(hra))
}

func TestBuildSalaryConfigCarriesToggles(t *testing.T) {
	settings := testSettings()
	settings.PFEnabled = false
	settings.ESIEnabled = false
	settings.PTEnabled = false

	cfg := buildSalaryConfig(settings, testEmployee(), testSummary())

	assert.False(t, cfg.PFEnabled)
	assert.False(t, cfg.ESIEnabled)
	assert.False(t, cfg.PTEnabled)
}

func TestBuildSalaryConfigFeedsCalculator(t *testing.T) {
	settings := testSettings()
	settings.State = "Karnataka"
	summary := testSummary()
	summary.LOPDays = decimal.Zero

	breakdown, err := salary.Calculate(buildSalaryConfig(settings, testEmployee(), summary))
	require.NoError(t, err)

	assert.Equal(t, int64(20000), breakdown.Basic)
	assert.Equal(t, int64(10000), breakdown.HRA)
	assert.Equal(t, int64(48200), breakdown.GrossSalary)
	assert.Equal(t, int64(46200), breakdown.NetSalary)
}

func TestBuildSalaryConfigProratesWithLOP(t *testing.T) {
	breakdown, err := salary.Calculate(buildSalaryConfig(testSettings(), testEmployee(), testSummary()))
	require.NoError(t, err)

	// 2 LOP days over a 30-day month
	full, err := salary.Calculate(buildSalaryConfig(testSettings(), testEmployee(), attendance.MonthlySummary{
		DaysInMonth: 30,
	}))
	require.NoError(t, err)

	assert.Less(t, breakdown.GrossSalary, full.GrossSalary)
	// 20000 * 28/30 rounds to 18667
	assert.Equal(t, int64(18667), breakdown.Basic)
}

// ===== DATABASE-BACKED TESTS =====

func payrollTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Pool.Close)
	return db
}

func payrollTestContext(t *testing.T, companyID string) context.Context {
	t.Helper()
	auth := jwtauth.New("HS256", []byte("payroll-test-secret"), nil)
	token, _, err := auth.Encode(map[string]interface{}{
		"company_id": companyID,
		"type":       "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestPayrollService_RunPayroll_RecomputesFinalizedRun(t *testing.T) {
	db := payrollTestDB(t)
	seedCtx := context.Background()

	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	emailSvc, err := email.NewEmailService(config.SMTPConfig{})
	require.NoError(t, err)

	svc := NewPayrollService(db, payrollRepo, employeeRepo, companyRepo, attendanceRepo, emailSvc)

	suffix := time.Now().UnixNano()
	comp, err := companyRepo.Create(seedCtx, company.Company{
		Name:  fmt.Sprintf("Recompute Test %d", suffix),
		Email: fmt.Sprintf("recompute-%d@example.com", suffix),
	})
	require.NoError(t, err)
	_, err = companyRepo.UpsertSettings(seedCtx, company.DefaultPayrollSettings(comp.ID))
	require.NoError(t, err)
	_, err = employeeRepo.Create(seedCtx, employee.Employee{
		CompanyID: comp.ID,
		Code:      fmt.Sprintf("PE-%d", suffix),
		Name:      "Recompute Test Employee",
		Email:     fmt.Sprintf("recompute-emp-%d@example.com", suffix),
		HireDate:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		AnnualCTC: decimal.NewFromInt(600000),
	})
	require.NoError(t, err)

	ctx := payrollTestContext(t, comp.ID)
	req := payroll.RunPayrollRequest{Month: 4, Year: 2026}

	first, err := svc.RunPayroll(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.StatusDraft), first.Status)

	for _, next := range []string{"processing", "finalized"} {
		_, err = svc.Transition(ctx, first.ID, payroll.TransitionRequest{Status: next})
		require.NoError(t, err)
	}

	// correcting a finalized month replaces the run rather than failing
	second, err := svc.RunPayroll(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, string(payroll.StatusDraft), second.Status)
	assert.Equal(t, 1, second.EmployeeCount)

	_, _, err = svc.GetRun(ctx, first.ID)
	assert.ErrorIs(t, err, payroll.ErrRunNotFound, "replaced run and its items are gone")
}
