package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/payease-hq/payease-backend-go/internal/domain/attendance"
)

func day(year int, month time.Month, d int, status attendance.DayStatus) attendance.Record {
	return attendance.Record{
		EmployeeID: "emp-1",
		Date:       time.Date(year, month, d, 0, 0, 0, 0, time.UTC),
		Status:     status,
	}
}

// markWeekdays marks every weekday of the month with the given status,
// skipping any days already present in the overrides map.
func markWeekdays(year int, month time.Month, status attendance.DayStatus, overrides map[int]attendance.DayStatus) []attendance.Record {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	var records []attendance.Record
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		st := status
		if o, ok := overrides[d]; ok {
			st = o
		}
		records = append(records, day(year, month, d, st))
	}
	return records
}

func TestAggregateMonthFullAttendance(t *testing.T) {
	// April 2026: 30 days, 8 weekend days.
	records := markWeekdays(2026, time.April, attendance.StatusPresent, nil)

	s := AggregateMonth("emp-1", 2026, time.April, records, decimal.Zero)

	assert.Equal(t, 30, s.DaysInMonth)
	assert.True(t, s.LOPDays.IsZero(), "expected zero LOP, got %s", s.LOPDays)
	assert.True(t, s.PresentDays.Equal(decimal.NewFromInt(22)))
	assert.Equal(t, 8, s.WeekendDays)
	assert.Equal(t, 0, s.UnmarkedDays)
}

func TestAggregateMonthAbsencesAndHalfDays(t *testing.T) {
	records := markWeekdays(2026, time.April, attendance.StatusPresent, map[int]attendance.DayStatus{
		1: attendance.StatusAbsent,
		2: attendance.StatusHalfDay,
		3: attendance.StatusLOP,
	})

	s := AggregateMonth("emp-1", 2026, time.April, records, decimal.Zero)

	assert.True(t, s.LOPDays.Equal(decimal.RequireFromString("2.5")), "got %s", s.LOPDays)
	assert.True(t, s.PresentDays.Equal(decimal.RequireFromString("19.5")))
}

func TestAggregateMonthUnmarkedWeekdayCountsAsAbsent(t *testing.T) {
	// Only the first weekday is marked; every other weekday is missing.
	records := []attendance.Record{day(2026, time.April, 1, attendance.StatusPresent)}

	s := AggregateMonth("emp-1", 2026, time.April, records, decimal.Zero)

	assert.Equal(t, 21, s.UnmarkedDays)
	assert.True(t, s.LOPDays.Equal(decimal.NewFromInt(21)), "got %s", s.LOPDays)
	assert.Equal(t, 8, s.WeekendDays)
}

func TestAggregateMonthPaidLeaveWithinBalance(t *testing.T) {
	records := markWeekdays(2026, time.April, attendance.StatusPresent, map[int]attendance.DayStatus{
		6: attendance.StatusOnLeave,
		7: attendance.StatusOnLeave,
	})

	s := AggregateMonth("emp-1", 2026, time.April, records, decimal.NewFromInt(5))

	assert.True(t, s.LOPDays.IsZero(), "paid leave within balance must not cost pay, got %s", s.LOPDays)
	assert.True(t, s.LeaveDays.Equal(decimal.NewFromInt(2)))
}

func TestAggregateMonthLeaveBeyondBalanceBecomesLOP(t *testing.T) {
	records := markWeekdays(2026, time.April, attendance.StatusPresent, map[int]attendance.DayStatus{
		6: attendance.StatusOnLeave,
		7: attendance.StatusOnLeave,
		8: attendance.StatusOnLeave,
	})

	s := AggregateMonth("emp-1", 2026, time.April, records, decimal.NewFromInt(2))

	assert.True(t, s.LOPDays.Equal(decimal.NewFromInt(1)), "third leave day must be LOP, got %s", s.LOPDays)
	assert.True(t, s.LeaveDays.Equal(decimal.NewFromInt(2)))
}

func TestAggregateMonthHolidaysDoNotCostPay(t *testing.T) {
	records := markWeekdays(2026, time.April, attendance.StatusPresent, map[int]attendance.DayStatus{
		14: attendance.StatusHoliday,
	})

	s := AggregateMonth("emp-1", 2026, time.April, records, decimal.Zero)

	assert.True(t, s.LOPDays.IsZero())
	assert.Equal(t, 1, s.HolidayDays)
}

func TestAggregateMonthIgnoresOtherMonths(t *testing.T) {
	records := append(
		markWeekdays(2026, time.April, attendance.StatusPresent, nil),
		day(2026, time.March, 31, attendance.StatusAbsent),
	)

	s := AggregateMonth("emp-1", 2026, time.April, records, decimal.Zero)

	assert.True(t, s.LOPDays.IsZero(), "March record must not leak into April, got %s", s.LOPDays)
}

func TestAggregateMonthFebruaryLength(t *testing.T) {
	s := AggregateMonth("emp-1", 2028, time.February, nil, decimal.Zero)
	assert.Equal(t, 29, s.DaysInMonth)

	s = AggregateMonth("emp-1", 2026, time.February, nil, decimal.Zero)
	assert.Equal(t, 28, s.DaysInMonth)
}
