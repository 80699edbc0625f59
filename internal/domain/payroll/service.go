package payroll

import "context"

type PayrollService interface {
	// RunPayroll computes (or recomputes) the run for the requested period.
	// Finalized and paid runs are immutable; draft and processing runs are
	// replaced wholesale.
	RunPayroll(ctx context.Context, req RunPayrollRequest) (RunResponse, error)
	GetRun(ctx context.Context, id string) (RunResponse, []ItemResponse, error)
	ListRuns(ctx context.Context) ([]RunResponse, error)
	Transition(ctx context.Context, id string, req TransitionRequest) (RunResponse, error)

	// GetPayslipPDF renders the payslip for one item of a finalized or paid
	// run. Returns the PDF bytes and a suggested filename.
	GetPayslipPDF(ctx context.Context, itemID string) ([]byte, string, error)
	// EmailPayslips sends every employee in a finalized or paid run their
	// payslip. Returns the number of emails sent.
	EmailPayslips(ctx context.Context, runID string) (int, error)
}
