package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/payease-hq/payease-backend-go/internal/domain/payroll"
	"github.com/payease-hq/payease-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const runColumns = `id, company_id, month, year, status, total_gross, total_deductions, total_net, employee_count, created_at, updated_at`

func scanRun(row pgx.Row) (payroll.Run, error) {
	var run payroll.Run
	var month int
	err := row.Scan(
		&run.ID, &run.CompanyID, &month, &run.Year, &run.Status,
		&run.TotalGross, &run.TotalDeductions, &run.TotalNet, &run.EmployeeCount,
		&run.CreatedAt, &run.UpdatedAt,
	)
	run.Month = time.Month(month)
	return run, err
}

// CreateRun implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) CreateRun(ctx context.Context, run payroll.Run) (payroll.Run, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payroll_runs (id, company_id, month, year, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + runColumns

	created, err := scanRun(q.QueryRow(ctx, query, run.ID, run.CompanyID, int(run.Month), run.Year, run.Status))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.Run{}, payroll.ErrRunInProgress
		}
		return payroll.Run{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	return created, nil
}

// GetRunByID implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetRunByID(ctx context.Context, id string, companyID string) (payroll.Run, error) {
	q := GetQuerier(ctx, p.db)

	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE id = $1 AND company_id = $2`

	run, err := scanRun(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("failed to get payroll run %s: %w", id, err)
	}

	return run, nil
}

// GetRunByPeriod implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetRunByPeriod(ctx context.Context, companyID string, month time.Month, year int) (payroll.Run, error) {
	q := GetQuerier(ctx, p.db)

	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE company_id = $1 AND month = $2 AND year = $3`

	run, err := scanRun(q.QueryRow(ctx, query, companyID, int(month), year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("failed to get payroll run for %d-%02d: %w", year, month, err)
	}

	return run, nil
}

// ListRuns implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) ListRuns(ctx context.Context, companyID string) ([]payroll.Run, error) {
	q := GetQuerier(ctx, p.db)

	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE company_id = $1 ORDER BY year DESC, month DESC`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs for company %s: %w", companyID, err)
	}
	defer rows.Close()

	var runs []payroll.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// DeleteRun implements payroll.PayrollRepository. Items go first to satisfy
// the foreign key, both inside the caller's transaction.
func (p *payrollRepositoryImpl) DeleteRun(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, p.db)

	if _, err := q.Exec(ctx, `DELETE FROM payroll_items WHERE run_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete payroll items for run %s: %w", id, err)
	}

	tag, err := q.Exec(ctx, `DELETE FROM payroll_runs WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll run %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRunNotFound
	}
	return nil
}

// UpdateRunStatus implements payroll.PayrollRepository. The WHERE clause on
// the current status makes the transition a compare-and-swap, so two
// operators finalizing the same run cannot both succeed.
func (p *payrollRepositoryImpl) UpdateRunStatus(ctx context.Context, id string, companyID string, from, to payroll.RunStatus) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE payroll_runs
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3 AND status = $4
	`

	tag, err := q.Exec(ctx, query, to, id, companyID, from)
	if err != nil {
		return fmt.Errorf("failed to update status of payroll run %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		// Either the run does not exist or it was not in `from`.
		if _, getErr := p.GetRunByID(ctx, id, companyID); getErr != nil {
			return getErr
		}
		return payroll.ErrInvalidTransition
	}
	return nil
}

// UpdateRunTotals implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) UpdateRunTotals(ctx context.Context, run payroll.Run) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE payroll_runs
		SET total_gross = $1, total_deductions = $2, total_net = $3, employee_count = $4, updated_at = NOW()
		WHERE id = $5 AND company_id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		run.TotalGross, run.TotalDeductions, run.TotalNet, run.EmployeeCount,
		run.ID, run.CompanyID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrRunNotFound
		}
		return fmt.Errorf("failed to update totals of payroll run %s: %w", run.ID, err)
	}
	return nil
}

const itemBreakdownColumns = `basic, hra, special_allowance, gross_salary,
	employer_pf, employer_esi, employee_pf, employee_esi, professional_tax, tds,
	total_deductions, net_salary, monthly_ctc, annual_ctc, lop_days, paid_days, days_in_month`

// CreateItem implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) CreateItem(ctx context.Context, item payroll.Item) (payroll.Item, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payroll_items (run_id, employee_id, ` + itemBreakdownColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at
	`

	b := item.Breakdown
	err := q.QueryRow(ctx, query,
		item.RunID, item.EmployeeID,
		b.Basic, b.HRA, b.SpecialAllowance, b.GrossSalary,
		b.EmployerPF, b.EmployerESI, b.EmployeePF, b.EmployeeESI, b.ProfessionalTax, b.TDS,
		b.TotalDeductions, b.NetSalary, b.MonthlyCTC, b.AnnualCTC, b.LOPDays, b.PaidDays, b.DaysInMonth,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return payroll.Item{}, fmt.Errorf("failed to create payroll item: %w", err)
	}

	return item, nil
}

func scanItem(row pgx.Row) (payroll.Item, error) {
	var item payroll.Item
	b := &item.Breakdown
	err := row.Scan(
		&item.ID, &item.RunID, &item.EmployeeID,
		&b.Basic, &b.HRA, &b.SpecialAllowance, &b.GrossSalary,
		&b.EmployerPF, &b.EmployerESI, &b.EmployeePF, &b.EmployeeESI, &b.ProfessionalTax, &b.TDS,
		&b.TotalDeductions, &b.NetSalary, &b.MonthlyCTC, &b.AnnualCTC, &b.LOPDays, &b.PaidDays, &b.DaysInMonth,
		&item.CreatedAt, &item.EmployeeName, &item.EmployeeCode, &item.EmployeeEmail,
	)
	return item, err
}

const itemSelect = `
	SELECT i.id, i.run_id, i.employee_id,
		i.basic, i.hra, i.special_allowance, i.gross_salary,
		i.employer_pf, i.employer_esi, i.employee_pf, i.employee_esi, i.professional_tax, i.tds,
		i.total_deductions, i.net_salary, i.monthly_ctc, i.annual_ctc, i.lop_days, i.paid_days, i.days_in_month,
		i.created_at, e.name, e.code, e.email
	FROM payroll_items i
	JOIN employees e ON e.id = i.employee_id
	JOIN payroll_runs r ON r.id = i.run_id
`

// GetItem implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetItem(ctx context.Context, id string, companyID string) (payroll.Item, error) {
	q := GetQuerier(ctx, p.db)

	query := itemSelect + ` WHERE i.id = $1 AND r.company_id = $2`

	item, err := scanItem(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Item{}, payroll.ErrItemNotFound
		}
		return payroll.Item{}, fmt.Errorf("failed to get payroll item %s: %w", id, err)
	}

	return item, nil
}

// ListItems implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) ListItems(ctx context.Context, runID string, companyID string) ([]payroll.Item, error) {
	q := GetQuerier(ctx, p.db)

	query := itemSelect + ` WHERE i.run_id = $1 AND r.company_id = $2 ORDER BY e.code`

	rows, err := q.Query(ctx, query, runID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll items for run %s: %w", runID, err)
	}
	defer rows.Close()

	var items []payroll.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
