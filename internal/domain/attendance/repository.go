package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for the daily attendance ledger.
// All methods take companyID to prevent cross-company access.
type AttendanceRepository interface {
	Upsert(ctx context.Context, rec Record) (Record, error)
	ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month, companyID string) ([]Record, error)
	ListByCompanyDate(ctx context.Context, companyID string, date time.Time) ([]Record, error)
	Delete(ctx context.Context, id string, companyID string) error

	// MarkAbsentForDate inserts absent records for active employees with no
	// record on the given weekday. Returns the number of rows inserted.
	MarkAbsentForDate(ctx context.Context, companyID string, date time.Time) (int64, error)
}
