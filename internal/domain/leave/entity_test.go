package leave

import (
	"testing"
	"time"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestInclusiveDays(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		halfDay bool
		want    float64
	}{
		{"single day", day(2025, 6, 2), day(2025, 6, 2), false, 1},
		{"full week", day(2025, 6, 2), day(2025, 6, 6), false, 5},
		{"across month boundary", day(2025, 6, 30), day(2025, 7, 2), false, 3},
		{"half day", day(2025, 6, 2), day(2025, 6, 2), true, 0.5},
		{"half day ignores range", day(2025, 6, 2), day(2025, 6, 6), true, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InclusiveDays(tt.start, tt.end, tt.halfDay); got != tt.want {
				t.Errorf("InclusiveDays() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLeaveBalanceAvailable(t *testing.T) {
	b := &LeaveBalance{
		Allocated:    12,
		CarryForward: 3,
		Used:         5,
		Pending:      2,
	}
	if got := b.Available(); got != 8 {
		t.Errorf("Available() = %v, want 8", got)
	}

	empty := &LeaveBalance{}
	if got := empty.Available(); got != 0 {
		t.Errorf("Available() on zero balance = %v, want 0", got)
	}
}

func TestDefaultLeaveTypes(t *testing.T) {
	types := DefaultLeaveTypes()
	if len(types) != 4 {
		t.Fatalf("len(DefaultLeaveTypes()) = %d, want 4", len(types))
	}

	byCode := make(map[string]LeaveType, len(types))
	for _, lt := range types {
		byCode[lt.Code] = lt
	}

	if cl := byCode["CL"]; cl.AnnualQuota != 12 || !cl.IsPaid {
		t.Errorf("CL = %+v, want 12 paid days", cl)
	}
	if el := byCode["EL"]; !el.CarryForward || el.MaxCarryForward != 30 {
		t.Errorf("EL = %+v, want carry forward capped at 30", el)
	}
	if lop := byCode["LOP"]; lop.IsPaid || lop.AnnualQuota != 0 {
		t.Errorf("LOP = %+v, want unpaid with zero quota", lop)
	}
}
