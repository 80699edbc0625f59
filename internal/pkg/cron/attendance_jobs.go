package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/payease-hq/payease-backend-go/internal/domain/attendance"
	"github.com/payease-hq/payease-backend-go/internal/pkg/database"
)

// AttendanceJobs closes out attendance days so month-end loss-of-pay
// aggregation sees an explicit record for every active employee.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	db             *database.DB
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository, db *database.DB) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		db:             db,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees inserts absent records for yesterday for every active
// employee without one. Weekends are skipped; the aggregator treats an
// unmarked weekend day as paid.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	if wd := yesterday.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job", "date", yesterday.Format("2006-01-02"))

	rows, err := j.db.Pool.Query(ctx, `
		SELECT DISTINCT company_id FROM employees
		WHERE is_active = TRUE
	`)
	if err != nil {
		return fmt.Errorf("failed to get companies: %w", err)
	}
	defer rows.Close()

	var companyIDs []string
	for rows.Next() {
		var companyID string
		if err := rows.Scan(&companyID); err != nil {
			continue
		}
		companyIDs = append(companyIDs, companyID)
	}

	var totalAbsent int64
	for _, companyID := range companyIDs {
		inserted, err := j.attendanceRepo.MarkAbsentForDate(ctx, companyID, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to mark absent employees", "company_id", companyID, "error", err)
			continue
		}
		totalAbsent += inserted
	}

	slog.Info("Cron: Marked absent employees", "count", totalAbsent)
	return nil
}
