package payroll

import (
	"time"

	"github.com/payease-hq/payease-backend-go/internal/domain/salary"
	"github.com/payease-hq/payease-backend-go/internal/pkg/validator"
)

type RunPayrollRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a four-digit year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransitionRequest struct {
	Status string `json:"status"`
}

func (r *TransitionRequest) Validate() error {
	if !RunStatus(r.Status).Valid() {
		return validator.ValidationErrors{{Field: "status", Message: "unknown status"}}
	}
	return nil
}

type RunResponse struct {
	ID              string `json:"id"`
	CompanyID       string `json:"company_id"`
	Month           int    `json:"month"`
	Year            int    `json:"year"`
	Status          string `json:"status"`
	TotalGross      int64  `json:"total_gross"`
	TotalDeductions int64  `json:"total_deductions"`
	TotalNet        int64  `json:"total_net"`
	EmployeeCount   int    `json:"employee_count"`
	CreatedAt       string `json:"created_at"`
}

type ItemResponse struct {
	ID            string           `json:"id"`
	RunID         string           `json:"run_id"`
	EmployeeID    string           `json:"employee_id"`
	EmployeeName  *string          `json:"employee_name,omitempty"`
	EmployeeCode  *string          `json:"employee_code,omitempty"`
	Breakdown     salary.Breakdown `json:"breakdown"`
}

func ToRunResponse(run Run) RunResponse {
	return RunResponse{
		ID:              run.ID,
		CompanyID:       run.CompanyID,
		Month:           int(run.Month),
		Year:            run.Year,
		Status:          string(run.Status),
		TotalGross:      run.TotalGross,
		TotalDeductions: run.TotalDeductions,
		TotalNet:        run.TotalNet,
		EmployeeCount:   run.EmployeeCount,
		CreatedAt:       run.CreatedAt.Format(time.RFC3339),
	}
}

func ToRunResponses(runs []Run) []RunResponse {
	out := make([]RunResponse, 0, len(runs))
	for _, r := range runs {
		out = append(out, ToRunResponse(r))
	}
	return out
}

func ToItemResponse(item Item) ItemResponse {
	return ItemResponse{
		ID:           item.ID,
		RunID:        item.RunID,
		EmployeeID:   item.EmployeeID,
		EmployeeName: item.EmployeeName,
		EmployeeCode: item.EmployeeCode,
		Breakdown:    item.Breakdown,
	}
}

func ToItemResponses(items []Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, ToItemResponse(i))
	}
	return out
}
