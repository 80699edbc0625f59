package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access for runs and items. All methods take
// companyID to prevent cross-company access.
type PayrollRepository interface {
	CreateRun(ctx context.Context, run Run) (Run, error)
	GetRunByID(ctx context.Context, id string, companyID string) (Run, error)
	GetRunByPeriod(ctx context.Context, companyID string, month time.Month, year int) (Run, error)
	ListRuns(ctx context.Context, companyID string) ([]Run, error)
	// DeleteRun removes a run and all its items (re-run semantics).
	DeleteRun(ctx context.Context, id string, companyID string) error
	// UpdateRunStatus performs a compare-and-swap on the status column and
	// returns ErrInvalidTransition when the run was not in `from`.
	UpdateRunStatus(ctx context.Context, id string, companyID string, from, to RunStatus) error
	UpdateRunTotals(ctx context.Context, run Run) error

	CreateItem(ctx context.Context, item Item) (Item, error)
	GetItem(ctx context.Context, id string, companyID string) (Item, error)
	ListItems(ctx context.Context, runID string, companyID string) ([]Item, error)
}
