package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/payease-hq/payease-backend-go/internal/domain/attendance"
	"github.com/payease-hq/payease-backend-go/internal/domain/company"
	"github.com/payease-hq/payease-backend-go/internal/domain/employee"
	"github.com/payease-hq/payease-backend-go/internal/domain/payroll"
	"github.com/payease-hq/payease-backend-go/internal/domain/salary"
	"github.com/payease-hq/payease-backend-go/internal/pkg/database"
	"github.com/payease-hq/payease-backend-go/internal/pkg/email"
	"github.com/payease-hq/payease-backend-go/internal/pkg/pdf"
	"github.com/payease-hq/payease-backend-go/internal/repository/postgresql"
	attendancesvc "github.com/payease-hq/payease-backend-go/internal/service/attendance"
)

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	companyRepo    company.CompanyRepository
	attendanceRepo attendance.AttendanceRepository
	emailSvc       email.EmailService
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	attendanceRepo attendance.AttendanceRepository,
	emailSvc email.EmailService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		companyRepo:    companyRepo,
		attendanceRepo: attendanceRepo,
		emailSvc:       emailSvc,
	}
}

// Helper to get company_id from JWT context
func companyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// buildSalaryConfig merges company payroll settings, the employee's own
// salary structure and the month's attendance into one calculator input.
// Employee-level Basic/HRA percentages win over the company defaults.
func buildSalaryConfig(settings company.PayrollSettings, emp employee.Employee, summary attendance.MonthlySummary) salary.Config {
	cfg := salary.NewConfig(emp.AnnualCTC)
	cfg.BasicPercentage = settings.BasicPercentage
	cfg.HRAPercentage = settings.HRAPercentage
	if emp.BasicPercentage != nil {
		cfg.BasicPercentage = *emp.BasicPercentage
	}
	if emp.HRAPercentage != nil {
		cfg.HRAPercentage = *emp.HRAPercentage
	}
	cfg.PFEnabled = settings.PFEnabled
	cfg.ESIEnabled = settings.ESIEnabled
	cfg.PTEnabled = settings.PTEnabled
	cfg.State = settings.State
	cfg.LOPDays = summary.LOPDays
	cfg.DaysInMonth = summary.DaysInMonth
	return cfg
}

// RunPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, req payroll.RunPayrollRequest) (payroll.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	month := time.Month(req.Month)

	settings, err := s.companyRepo.GetSettings(ctx, companyID)
	if err != nil {
		if !errors.Is(err, company.ErrSettingsNotFound) {
			return payroll.RunResponse{}, err
		}
		settings = company.DefaultPayrollSettings(companyID)
	}

	if _, recognized := salary.LookupRule(settings.State); !recognized && settings.PTEnabled {
		slog.Warn("Unrecognized state for professional tax, using fallback slab",
			"company_id", companyID, "state", settings.State,
			"fallback", salary.DefaultState, "recognized", salary.States())
	}

	employees, err := s.employeeRepo.ListByCompanyID(ctx, companyID, true)
	if err != nil {
		return payroll.RunResponse{}, err
	}
	if len(employees) == 0 {
		return payroll.RunResponse{}, payroll.ErrNoActiveEmployees
	}

	// A re-run replaces whatever exists for the period regardless of its
	// status, so a finalized month can still be corrected. The prior run and
	// its items are deleted in the same transaction that writes the new ones.
	existing, err := s.payrollRepo.GetRunByPeriod(ctx, companyID, month, req.Year)
	if err != nil && !errors.Is(err, payroll.ErrRunNotFound) {
		return payroll.RunResponse{}, err
	}

	var run payroll.Run
	txErr := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		if existing.ID != "" {
			if err := s.payrollRepo.DeleteRun(txCtx, existing.ID, companyID); err != nil {
				return err
			}
		}

		run, err = s.payrollRepo.CreateRun(txCtx, payroll.Run{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			Month:     month,
			Year:      req.Year,
			Status:    payroll.StatusDraft,
		})
		if err != nil {
			return err
		}

		for _, emp := range employees {
			records, err := s.attendanceRepo.ListByEmployeeMonth(txCtx, emp.ID, req.Year, month, companyID)
			if err != nil {
				return err
			}
			summary := attendancesvc.AggregateMonth(emp.ID, req.Year, month, records, emp.PaidLeaveBalance)

			breakdown, err := salary.Calculate(buildSalaryConfig(settings, emp, summary))
			if err != nil {
				return fmt.Errorf("failed to compute salary for employee %s: %w", emp.Code, err)
			}

			if _, err := s.payrollRepo.CreateItem(txCtx, payroll.Item{
				RunID:      run.ID,
				EmployeeID: emp.ID,
				Breakdown:  breakdown,
			}); err != nil {
				return err
			}

			run.TotalGross += breakdown.GrossSalary
			run.TotalDeductions += breakdown.TotalDeductions
			run.TotalNet += breakdown.NetSalary
			run.EmployeeCount++
		}

		return s.payrollRepo.UpdateRunTotals(txCtx, run)
	})
	if txErr != nil {
		return payroll.RunResponse{}, txErr
	}

	slog.Info("Payroll run computed",
		"company_id", companyID, "run_id", run.ID,
		"period", fmt.Sprintf("%d-%02d", run.Year, int(run.Month)),
		"employees", run.EmployeeCount, "total_net", run.TotalNet)

	return payroll.ToRunResponse(run), nil
}

// GetRun implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRun(ctx context.Context, id string) (payroll.RunResponse, []payroll.ItemResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return payroll.RunResponse{}, nil, err
	}

	run, err := s.payrollRepo.GetRunByID(ctx, id, companyID)
	if err != nil {
		return payroll.RunResponse{}, nil, err
	}

	items, err := s.payrollRepo.ListItems(ctx, id, companyID)
	if err != nil {
		return payroll.RunResponse{}, nil, err
	}

	return payroll.ToRunResponse(run), payroll.ToItemResponses(items), nil
}

// ListRuns implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRuns(ctx context.Context) ([]payroll.RunResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	runs, err := s.payrollRepo.ListRuns(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return payroll.ToRunResponses(runs), nil
}

// Transition implements payroll.PayrollService.
func (s *PayrollServiceImpl) Transition(ctx context.Context, id string, req payroll.TransitionRequest) (payroll.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	run, err := s.payrollRepo.GetRunByID(ctx, id, companyID)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	next := payroll.RunStatus(req.Status)
	if !run.Status.CanTransitionTo(next) {
		return payroll.RunResponse{}, payroll.ErrInvalidTransition
	}

	if err := s.payrollRepo.UpdateRunStatus(ctx, id, companyID, run.Status, next); err != nil {
		return payroll.RunResponse{}, err
	}

	slog.Info("Payroll run status changed",
		"company_id", companyID, "run_id", id, "from", run.Status, "to", next)

	run.Status = next
	return payroll.ToRunResponse(run), nil
}

// GetPayslipPDF implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslipPDF(ctx context.Context, itemID string) ([]byte, string, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return nil, "", err
	}

	item, err := s.payrollRepo.GetItem(ctx, itemID, companyID)
	if err != nil {
		return nil, "", err
	}

	run, err := s.payrollRepo.GetRunByID(ctx, item.RunID, companyID)
	if err != nil {
		return nil, "", err
	}
	if run.Status != payroll.StatusFinalized && run.Status != payroll.StatusPaid {
		return nil, "", payroll.ErrRunNotFinalized
	}

	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, "", err
	}

	data := pdf.PayslipData{
		CompanyName: comp.Name,
		Month:       run.Month,
		Year:        run.Year,
		Breakdown:   item.Breakdown,
	}
	if item.EmployeeName != nil {
		data.EmployeeName = *item.EmployeeName
	}
	if item.EmployeeCode != nil {
		data.EmployeeCode = *item.EmployeeCode
	}
	if item.EmployeeEmail != nil {
		data.Email = *item.EmployeeEmail
	}

	out, err := pdf.RenderPayslip(data)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("payslip-%d-%02d-%s.pdf", run.Year, int(run.Month), data.EmployeeCode)
	return out, filename, nil
}

// EmailPayslips implements payroll.PayrollService.
func (s *PayrollServiceImpl) EmailPayslips(ctx context.Context, runID string) (int, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return 0, err
	}

	run, err := s.payrollRepo.GetRunByID(ctx, runID, companyID)
	if err != nil {
		return 0, err
	}
	if run.Status != payroll.StatusFinalized && run.Status != payroll.StatusPaid {
		return 0, payroll.ErrRunNotFinalized
	}

	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return 0, err
	}

	items, err := s.payrollRepo.ListItems(ctx, runID, companyID)
	if err != nil {
		return 0, err
	}

	period := fmt.Sprintf("%s %d", run.Month.String(), run.Year)
	sent := 0
	for _, item := range items {
		if item.EmployeeEmail == nil || *item.EmployeeEmail == "" {
			continue
		}

		data := pdf.PayslipData{
			CompanyName: comp.Name,
			Month:       run.Month,
			Year:        run.Year,
			Breakdown:   item.Breakdown,
		}
		if item.EmployeeName != nil {
			data.EmployeeName = *item.EmployeeName
		}
		if item.EmployeeCode != nil {
			data.EmployeeCode = *item.EmployeeCode
		}
		data.Email = *item.EmployeeEmail

		slip, err := pdf.RenderPayslip(data)
		if err != nil {
			slog.Error("Failed to render payslip", "run_id", runID, "employee_id", item.EmployeeID, "error", err)
			continue
		}

		if err := s.emailSvc.SendPayslip(
			*item.EmployeeEmail, data.EmployeeName, comp.Name, period,
			pdf.FormatRupees(item.Breakdown.NetSalary), slip,
		); err != nil {
			slog.Error("Failed to email payslip", "run_id", runID, "employee_id", item.EmployeeID, "error", err)
			continue
		}
		sent++
	}

	slog.Info("Payslips emailed", "company_id", companyID, "run_id", runID, "sent", sent, "total", len(items))
	return sent, nil
}
