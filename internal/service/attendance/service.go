package attendance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/gocarina/gocsv"

	"github.com/payease-hq/payease-backend-go/internal/domain/attendance"
	"github.com/payease-hq/payease-backend-go/internal/domain/employee"
	"github.com/payease-hq/payease-backend-go/internal/pkg/database"
	"github.com/payease-hq/payease-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
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

// UpsertDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpsertDay(ctx context.Context, req attendance.UpsertRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	// Employee must exist in this company before the ledger accepts a day.
	if _, err := a.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	rec := attendance.Record{
		EmployeeID: req.EmployeeID,
		CompanyID:  companyID,
		Date:       date,
		Status:     attendance.DayStatus(req.Status),
		Remarks:    req.Remarks,
	}
	rec.InTime, err = combineClockTime(date, req.InTime, "in_time")
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	rec.OutTime, err = combineClockTime(date, req.OutTime, "out_time")
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	saved, err := a.attendanceRepo.Upsert(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToRecordResponse(saved), nil
}

// combineClockTime anchors an "HH:MM" clock time onto the record's date.
func combineClockTime(date time.Time, clock *string, field string) (*time.Time, error) {
	if clock == nil || *clock == "" {
		return nil, nil
	}
	t, ok := validator.IsValidClockTime(*clock)
	if !ok {
		return nil, validator.ValidationErrors{{Field: field, Message: "must be HH:MM"}}
	}
	combined := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
	return &combined, nil
}

// ListEmployeeMonth implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.RecordResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := a.attendanceRepo.ListByEmployeeMonth(ctx, employeeID, year, month, companyID)
	if err != nil {
		return nil, err
	}

	out := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, attendance.ToRecordResponse(rec))
	}
	return out, nil
}

// ListCompanyDate implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListCompanyDate(ctx context.Context, dateStr string) ([]attendance.RecordResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		return nil, attendance.ErrInvalidDate
	}

	records, err := a.attendanceRepo.ListByCompanyDate(ctx, companyID, date)
	if err != nil {
		return nil, err
	}

	out := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, attendance.ToRecordResponse(rec))
	}
	return out, nil
}

// DeleteDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteDay(ctx context.Context, id string) error {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return err
	}

	return a.attendanceRepo.Delete(ctx, id, companyID)
}

// ImportCSV implements attendance.AttendanceService. Rows are processed
// independently; a bad row is reported, not fatal, so a 500-row file with two
// typos still imports 498 days.
func (a *AttendanceServiceImpl) ImportCSV(ctx context.Context, r io.Reader) (attendance.ImportResult, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return attendance.ImportResult{}, err
	}

	var rows []attendance.ImportRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return attendance.ImportResult{}, fmt.Errorf("failed to parse attendance CSV: %w", err)
	}
	if len(rows) == 0 {
		return attendance.ImportResult{}, attendance.ErrEmptyImport
	}

	result := attendance.ImportResult{TotalRows: len(rows)}

	// Identifier lookups repeat across rows, one fetch per employee is enough.
	cache := make(map[string]employee.Employee)

	for i, row := range rows {
		// Row numbers are 1-based and skip the header line.
		rowNum := i + 2

		emp, ok := cache[row.EmployeeIdentifier]
		if !ok {
			emp, err = a.employeeRepo.GetByIdentifier(ctx, row.EmployeeIdentifier, companyID)
			if err != nil {
				if errors.Is(err, employee.ErrEmployeeNotFound) {
					result.Failed++
					result.Errors = append(result.Errors, attendance.ImportRowError{
						Row:     rowNum,
						Message: fmt.Sprintf("unknown employee %q", row.EmployeeIdentifier),
					})
					continue
				}
				return attendance.ImportResult{}, err
			}
			cache[row.EmployeeIdentifier] = emp
		}

		req := attendance.UpsertRecordRequest{
			EmployeeID: emp.ID,
			Date:       row.Date,
			Status:     row.Status,
		}
		if row.InTime != "" {
			req.InTime = &row.InTime
		}
		if row.OutTime != "" {
			req.OutTime = &row.OutTime
		}
		if row.Remarks != "" {
			req.Remarks = &row.Remarks
		}

		if _, err := a.UpsertDay(ctx, req); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, attendance.ImportRowError{Row: rowNum, Message: err.Error()})
			continue
		}
		result.Imported++
	}

	return result, nil
}

// MonthlySummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlySummary(ctx context.Context, employeeID string, year int, month time.Month) (attendance.MonthlySummaryResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	emp, err := a.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	records, err := a.attendanceRepo.ListByEmployeeMonth(ctx, employeeID, year, month, companyID)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	summary := AggregateMonth(employeeID, year, month, records, emp.PaidLeaveBalance)
	return attendance.ToSummaryResponse(summary), nil
}
