package payroll

import (
	"time"

	"github.com/payease-hq/payease-backend-go/internal/domain/salary"
)

// RunStatus is the lifecycle of one payroll run. Transitions move forward
// only; a correction is a re-run, which recreates the run in draft.
type RunStatus string

const (
	StatusDraft      RunStatus = "draft"
	StatusProcessing RunStatus = "processing"
	StatusFinalized  RunStatus = "finalized"
	StatusPaid       RunStatus = "paid"
)

func (s RunStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusProcessing, StatusFinalized, StatusPaid:
		return true
	}
	return false
}

// CanTransitionTo reports whether the operator may move a run from s to next.
func (s RunStatus) CanTransitionTo(next RunStatus) bool {
	switch s {
	case StatusDraft:
		return next == StatusProcessing
	case StatusProcessing:
		return next == StatusFinalized
	case StatusFinalized:
		return next == StatusPaid
	}
	return false
}

// Run aggregates one month's payroll items for a company. Totals are sums
// over the items, written back after computation.
type Run struct {
	ID              string
	CompanyID       string
	Month           time.Month
	Year            int
	Status          RunStatus
	TotalGross      int64
	TotalDeductions int64
	TotalNet        int64
	EmployeeCount   int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Item is one employee's line in a run, carrying the full breakdown the
// calculator produced.
type Item struct {
	ID         string
	RunID      string
	EmployeeID string
	Breakdown  salary.Breakdown
	CreatedAt  time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeCode  *string
	EmployeeEmail *string
}
