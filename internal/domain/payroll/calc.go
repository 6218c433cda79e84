package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthWindow returns the first and last day of the given month along with
// its total day count.
func MonthWindow(month, year int) (start, end time.Time, totalDays int) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end, end.Day()
}

// CountSundays counts Sundays between start and end inclusive.
func CountSundays(start, end time.Time) int {
	n := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			n++
		}
	}
	return n
}

// EffectivePresentDays folds half days in at half weight and credits paid
// leave as presence.
func EffectivePresentDays(presentDays, halfDays int, paidLeaveDays float64) float64 {
	return float64(presentDays) + float64(halfDays)*0.5 + paidLeaveDays
}

// PerDaySalary divides the gross monthly salary across working days.
// A month with zero working days cannot be processed.
func PerDaySalary(gross decimal.Decimal, workingDays int) (decimal.Decimal, error) {
	if workingDays <= 0 {
		return decimal.Zero, ErrNoWorkingDays
	}
	return gross.Div(decimal.NewFromInt(int64(workingDays))), nil
}

// LOPDeduction prices unpaid leave at the per-day rate, rounded to the
// nearest whole unit.
func LOPDeduction(lopDays float64, perDay decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(lopDays).Mul(perDay).Round(0)
}
