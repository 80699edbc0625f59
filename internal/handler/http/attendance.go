package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/payease-hq/payease-backend-go/internal/domain/attendance"
	"github.com/payease-hq/payease-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	UpsertDay(w http.ResponseWriter, r *http.Request)
	ListEmployeeMonth(w http.ResponseWriter, r *http.Request)
	ListCompanyDate(w http.ResponseWriter, r *http.Request)
	DeleteDay(w http.ResponseWriter, r *http.Request)
	ImportCSV(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// UpsertDay implements AttendanceHandler.
func (a *AttendanceHandlerImpl) UpsertDay(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertDay decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := a.attendanceService.UpsertDay(r.Context(), req)
	if err != nil {
		slog.Error("UpsertDay service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rec)
}

// parsePeriod reads year and month query params.
func parsePeriod(r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// ListEmployeeMonth implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListEmployeeMonth(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	year, month, ok := parsePeriod(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	records, err := a.attendanceService.ListEmployeeMonth(r.Context(), employeeID, year, month)
	if err != nil {
		slog.Error("ListEmployeeMonth service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListCompanyDate implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListCompanyDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required", nil)
		return
	}

	records, err := a.attendanceService.ListCompanyDate(r.Context(), date)
	if err != nil {
		slog.Error("ListCompanyDate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// DeleteDay implements AttendanceHandler.
func (a *AttendanceHandlerImpl) DeleteDay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := a.attendanceService.DeleteDay(r.Context(), id); err != nil {
		slog.Error("DeleteDay service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

// ImportCSV implements AttendanceHandler. Expects a multipart form with the
// CSV under the "file" field.
func (a *AttendanceHandlerImpl) ImportCSV(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "CSV file is required under the \"file\" field", nil)
		return
	}
	defer file.Close()

	result, err := a.attendanceService.ImportCSV(r.Context(), file)
	if err != nil {
		slog.Error("ImportCSV service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance CSV imported", "total", result.TotalRows, "imported", result.Imported, "failed", result.Failed)
	response.Success(w, result)
}

// MonthlySummary implements AttendanceHandler.
func (a *AttendanceHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	year, month, ok := parsePeriod(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	summary, err := a.attendanceService.MonthlySummary(r.Context(), employeeID, year, month)
	if err != nil {
		slog.Error("MonthlySummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
