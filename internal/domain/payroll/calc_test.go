package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMonthWindow(t *testing.T) {
	start, end, totalDays := MonthWindow(6, 2025)

	if !start.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
	if totalDays != 30 {
		t.Errorf("totalDays = %d, want 30", totalDays)
	}

	// Leap year February.
	_, _, febDays := MonthWindow(2, 2024)
	if febDays != 29 {
		t.Errorf("february 2024 totalDays = %d, want 29", febDays)
	}
}

func TestCountSundays(t *testing.T) {
	// June 2025 has Sundays on 1, 8, 15, 22, 29.
	start, end, _ := MonthWindow(6, 2025)
	if got := CountSundays(start, end); got != 5 {
		t.Errorf("CountSundays(june 2025) = %d, want 5", got)
	}

	// September 2025 has Sundays on 7, 14, 21, 28.
	start, end, _ = MonthWindow(9, 2025)
	if got := CountSundays(start, end); got != 4 {
		t.Errorf("CountSundays(september 2025) = %d, want 4", got)
	}
}

func TestEffectivePresentDays(t *testing.T) {
	if got := EffectivePresentDays(18, 2, 3); got != 22 {
		t.Errorf("EffectivePresentDays(18, 2, 3) = %v, want 22", got)
	}
	if got := EffectivePresentDays(0, 0, 0); got != 0 {
		t.Errorf("EffectivePresentDays(0, 0, 0) = %v, want 0", got)
	}
	if got := EffectivePresentDays(10, 1, 0.5); got != 11 {
		t.Errorf("EffectivePresentDays(10, 1, 0.5) = %v, want 11", got)
	}
}

func TestPerDaySalary(t *testing.T) {
	perDay, err := PerDaySalary(decimal.NewFromInt(50000), 25)
	if err != nil {
		t.Fatalf("PerDaySalary() error = %v", err)
	}
	if !perDay.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("PerDaySalary() = %v, want 2000", perDay)
	}

	if _, err := PerDaySalary(decimal.NewFromInt(50000), 0); err != ErrNoWorkingDays {
		t.Errorf("PerDaySalary() with zero working days error = %v, want %v", err, ErrNoWorkingDays)
	}
}

func TestLOPDeduction(t *testing.T) {
	perDay := decimal.RequireFromString("1666.666666")

	// 2.5 days at ~1666.67 is 4166.67, rounded to the nearest whole unit.
	got := LOPDeduction(2.5, perDay)
	if !got.Equal(decimal.NewFromInt(4167)) {
		t.Errorf("LOPDeduction(2.5) = %v, want 4167", got)
	}

	if got := LOPDeduction(0, perDay); !got.Equal(decimal.Zero) {
		t.Errorf("LOPDeduction(0) = %v, want 0", got)
	}
}

func TestMonthlyNetFromCounts(t *testing.T) {
	// 30-day month, 4 Sundays, 1 holiday leaves 25 working days.
	start, end, totalDays := MonthWindow(9, 2025)
	weekoffs := CountSundays(start, end)
	holidays := 1
	workingDays := totalDays - weekoffs - holidays
	if workingDays != 25 {
		t.Fatalf("workingDays = %d, want 25", workingDays)
	}

	perDay, err := PerDaySalary(decimal.NewFromInt(75000), workingDays)
	if err != nil {
		t.Fatal(err)
	}
	if !perDay.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("perDay = %v, want 3000", perDay)
	}

	lop := LOPDeduction(2, perDay)
	if !lop.Equal(decimal.NewFromInt(6000)) {
		t.Errorf("lop = %v, want 6000", lop)
	}
}
