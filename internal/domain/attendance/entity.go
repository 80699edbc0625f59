package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayStatus is the fixed vocabulary of one attendance day.
type DayStatus string

const (
	StatusPresent DayStatus = "present"
	StatusAbsent  DayStatus = "absent"
	StatusHalfDay DayStatus = "half_day"
	StatusOnLeave DayStatus = "on_leave"
	StatusHoliday DayStatus = "holiday"
	StatusWeekend DayStatus = "weekend"
	StatusLOP     DayStatus = "lop"
)

func (s DayStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusOnLeave,
		StatusHoliday, StatusWeekend, StatusLOP:
		return true
	}
	return false
}

type Record struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time
	InTime     *time.Time
	OutTime    *time.Time
	Status     DayStatus
	Remarks    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// MonthlySummary is the aggregate the salary engine consumes: loss-of-pay
// days (fractional, half-day granularity) and the calendar length of the
// month. The remaining counters feed the dashboard, not the calculation.
type MonthlySummary struct {
	EmployeeID  string
	Year        int
	Month       time.Month
	DaysInMonth int
	LOPDays     decimal.Decimal

	PresentDays  decimal.Decimal
	LeaveDays    decimal.Decimal
	HolidayDays  int
	WeekendDays  int
	UnmarkedDays int
}
