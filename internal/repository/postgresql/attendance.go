package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/payease-hq/payease-backend-go/internal/domain/attendance"
	"github.com/payease-hq/payease-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Date,
		&rec.InTime, &rec.OutTime, &rec.Status, &rec.Remarks,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Upsert implements attendance.AttendanceRepository. One record per employee
// per day; a second write for the same day overwrites the first.
func (a *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (employee_id, company_id, date, in_time, out_time, status, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			in_time = EXCLUDED.in_time,
			out_time = EXCLUDED.out_time,
			status = EXCLUDED.status,
			remarks = EXCLUDED.remarks,
			updated_at = NOW()
		RETURNING id, employee_id, company_id, date, in_time, out_time, status, remarks, created_at, updated_at
	`

	saved, err := scanRecord(q.QueryRow(ctx, query,
		rec.EmployeeID, rec.CompanyID, rec.Date, rec.InTime, rec.OutTime, rec.Status, rec.Remarks,
	))
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return saved, nil
}

// ListByEmployeeMonth implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month, companyID string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, company_id, date, in_time, out_time, status, remarks, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND company_id = $2
			AND date >= $3 AND date < $4
		ORDER BY date
	`

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := q.Query(ctx, query, employeeID, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListByCompanyDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByCompanyDate(ctx context.Context, companyID string, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT r.id, r.employee_id, r.company_id, r.date, r.in_time, r.out_time, r.status, r.remarks,
			r.created_at, r.updated_at, e.name, e.code
		FROM attendance_records r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.company_id = $1 AND r.date = $2
		ORDER BY e.code
	`

	rows, err := q.Query(ctx, query, companyID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for company %s: %w", companyID, err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Date,
			&rec.InTime, &rec.OutTime, &rec.Status, &rec.Remarks,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName, &rec.EmployeeCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

// MarkAbsentForDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) MarkAbsentForDate(ctx context.Context, companyID string, date time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (employee_id, company_id, date, status, remarks)
		SELECT e.id, e.company_id, $2, $3, 'auto-marked absent at day close'
		FROM employees e
		WHERE e.company_id = $1 AND e.is_active = TRUE
			AND NOT EXISTS (
				SELECT 1 FROM attendance_records r
				WHERE r.employee_id = e.id AND r.date = $2
			)
	`

	tag, err := q.Exec(ctx, query, companyID, date, attendance.StatusAbsent)
	if err != nil {
		return 0, fmt.Errorf("failed to mark absent employees for company %s: %w", companyID, err)
	}

	return tag.RowsAffected(), nil
}
