package attendance

import (
	"time"

	"github.com/payease-hq/payease-backend-go/internal/pkg/validator"
)

type UpsertRecordRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	InTime     *string `json:"in_time,omitempty"`
	OutTime    *string `json:"out_time,omitempty"`
	Remarks    *string `json:"remarks,omitempty"`
}

func (r *UpsertRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !DayStatus(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ImportRow is one line of the bulk attendance CSV. The identifier may be an
// email address or an employee code.
type ImportRow struct {
	EmployeeIdentifier string `csv:"EmployeeIdentifier"`
	Date               string `csv:"Date"`
	InTime             string `csv:"InTime"`
	OutTime            string `csv:"OutTime"`
	Status             string `csv:"Status"`
	Remarks            string `csv:"Remarks"`
}

type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportResult struct {
	TotalRows int              `json:"total_rows"`
	Imported  int              `json:"imported"`
	Failed    int              `json:"failed"`
	Errors    []ImportRowError `json:"errors,omitempty"`
}

type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	InTime       *string `json:"in_time,omitempty"`
	OutTime      *string `json:"out_time,omitempty"`
	Remarks      *string `json:"remarks,omitempty"`
}

type MonthlySummaryResponse struct {
	EmployeeID   string `json:"employee_id"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	DaysInMonth  int    `json:"days_in_month"`
	LOPDays      string `json:"lop_days"`
	PresentDays  string `json:"present_days"`
	LeaveDays    string `json:"leave_days"`
	HolidayDays  int    `json:"holiday_days"`
	WeekendDays  int    `json:"weekend_days"`
	UnmarkedDays int    `json:"unmarked_days"`
}

func ToRecordResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		EmployeeCode: rec.EmployeeCode,
		Date:         rec.Date.Format("2006-01-02"),
		Status:       string(rec.Status),
		Remarks:      rec.Remarks,
	}
	if rec.InTime != nil {
		v := rec.InTime.Format(time.RFC3339)
		resp.InTime = &v
	}
	if rec.OutTime != nil {
		v := rec.OutTime.Format(time.RFC3339)
		resp.OutTime = &v
	}
	return resp
}

func ToSummaryResponse(s MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		EmployeeID:   s.EmployeeID,
		Year:         s.Year,
		Month:        int(s.Month),
		DaysInMonth:  s.DaysInMonth,
		LOPDays:      s.LOPDays.String(),
		PresentDays:  s.PresentDays.String(),
		LeaveDays:    s.LeaveDays.String(),
		HolidayDays:  s.HolidayDays,
		WeekendDays:  s.WeekendDays,
		UnmarkedDays: s.UnmarkedDays,
	}
}
