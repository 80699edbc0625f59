package attendance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/payease-hq/payease-backend-go/internal/domain/attendance"
)

var (
	oneDay  = decimal.NewFromInt(1)
	halfDay = decimal.RequireFromString("0.5")
)

// AggregateMonth folds one employee's attendance records into the monthly
// summary the salary calculation consumes.
//
// Day weighting:
//   - present, holiday, weekend: no loss of pay
//   - absent, lop: one day of loss of pay
//   - half_day: half a day
//   - on_leave: paid while the leave balance lasts, loss of pay after
//   - unmarked weekday: treated as absent
//   - unmarked weekend: treated as paid
//
// Records are matched by calendar day, so the caller may pass them in any
// order. Paid leave is consumed in date order.
func AggregateMonth(employeeID string, year int, month time.Month, records []attendance.Record, paidLeaveBalance decimal.Decimal) attendance.MonthlySummary {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	byDay := make(map[int]attendance.Record, len(records))
	for _, rec := range records {
		if rec.Date.Year() == year && rec.Date.Month() == month {
			byDay[rec.Date.Day()] = rec
		}
	}

	summary := attendance.MonthlySummary{
		EmployeeID:  employeeID,
		Year:        year,
		Month:       month,
		DaysInMonth: daysInMonth,
	}

	leaveLeft := paidLeaveBalance

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		isWeekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday

		rec, marked := byDay[day]
		if !marked {
			if isWeekend {
				summary.WeekendDays++
			} else {
				summary.UnmarkedDays++
				summary.LOPDays = summary.LOPDays.Add(oneDay)
			}
			continue
		}

		switch rec.Status {
		case attendance.StatusPresent:
			summary.PresentDays = summary.PresentDays.Add(oneDay)
		case attendance.StatusHalfDay:
			summary.PresentDays = summary.PresentDays.Add(halfDay)
			summary.LOPDays = summary.LOPDays.Add(halfDay)
		case attendance.StatusAbsent, attendance.StatusLOP:
			summary.LOPDays = summary.LOPDays.Add(oneDay)
		case attendance.StatusOnLeave:
			if leaveLeft.GreaterThanOrEqual(oneDay) {
				leaveLeft = leaveLeft.Sub(oneDay)
				summary.LeaveDays = summary.LeaveDays.Add(oneDay)
			} else {
				summary.LOPDays = summary.LOPDays.Add(oneDay)
			}
		case attendance.StatusHoliday:
			summary.HolidayDays++
		case attendance.StatusWeekend:
			summary.WeekendDays++
		}
	}

	return summary
}
