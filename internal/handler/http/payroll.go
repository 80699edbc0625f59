package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/payease-hq/payease-backend-go/internal/domain/payroll"
	"github.com/payease-hq/payease-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)
	Transition(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
	EmailPayslips(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Run implements PayrollHandler.
func (p *PayrollHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	var req payroll.RunPayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Run payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	run, err := p.payrollService.RunPayroll(r.Context(), req)
	if err != nil {
		slog.Error("Run payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll run computed", run)
}

// GetRun implements PayrollHandler.
func (p *PayrollHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, items, err := p.payrollService.GetRun(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"run":   run,
		"items": items,
	})
}

// ListRuns implements PayrollHandler.
func (p *PayrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := p.payrollService.ListRuns(r.Context())
	if err != nil {
		slog.Error("ListRuns service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, runs)
}

// Transition implements PayrollHandler.
func (p *PayrollHandlerImpl) Transition(w http.ResponseWriter, r *http.Request) {
	var req payroll.TransitionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Transition decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	run, err := p.payrollService.Transition(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Transition service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run status updated", run)
}

// DownloadPayslip implements PayrollHandler. Streams the PDF rather than
// wrapping it in the JSON envelope.
func (p *PayrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	slip, filename, err := p.payrollService.GetPayslipPDF(r.Context(), itemID)
	if err != nil {
		slog.Error("DownloadPayslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(slip)
}

// EmailPayslips implements PayrollHandler.
func (p *PayrollHandlerImpl) EmailPayslips(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")

	sent, err := p.payrollService.EmailPayslips(r.Context(), runID)
	if err != nil {
		slog.Error("EmailPayslips service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslips emailed", map[string]int{"sent": sent})
}
