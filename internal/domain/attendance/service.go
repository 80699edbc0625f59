package attendance

import (
	"context"
	"io"
	"time"
)

type AttendanceService interface {
	UpsertDay(ctx context.Context, req UpsertRecordRequest) (RecordResponse, error)
	ListEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]RecordResponse, error)
	ListCompanyDate(ctx context.Context, date string) ([]RecordResponse, error)
	DeleteDay(ctx context.Context, id string) error
	ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error)
	MonthlySummary(ctx context.Context, employeeID string, year int, month time.Month) (MonthlySummaryResponse, error)
}
