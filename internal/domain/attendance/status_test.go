package attendance

import (
	"testing"
	"time"
)

func punchAt(hour, min int) *time.Time {
	t := time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
	return &t
}

func TestDeriveStatus(t *testing.T) {
	cfg := DefaultWorkConfig()

	tests := []struct {
		name     string
		punchIn  *time.Time
		punchOut *time.Time
		want     Status
	}{
		{"no punch in", nil, nil, StatusAbsent},
		{"punch out without punch in", nil, punchAt(18, 0), StatusAbsent},
		{"in only on time", punchAt(9, 0), nil, StatusPresent},
		{"in only within grace", punchAt(9, 15), nil, StatusPresent},
		{"in only past grace", punchAt(9, 16), nil, StatusLate},
		{"full day on time", punchAt(9, 0), punchAt(18, 0), StatusPresent},
		{"late arrival full day", punchAt(9, 20), punchAt(18, 0), StatusLate},
		{"left early", punchAt(9, 0), punchAt(17, 0), StatusEarly},
		{"left within early window", punchAt(9, 0), punchAt(17, 30), StatusPresent},
		{"short shift", punchAt(9, 0), punchAt(12, 30), StatusHalfDay},
		{"short shift and late wins half-day", punchAt(10, 0), punchAt(13, 0), StatusHalfDay},
		{"short shift and early wins half-day", punchAt(13, 0), punchAt(16, 0), StatusHalfDay},
		{"exactly half-day threshold", punchAt(9, 0), punchAt(13, 0), StatusEarly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.punchIn, tt.punchOut, cfg)
			if got != tt.want {
				t.Errorf("DeriveStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeriveStatusCustomConfig(t *testing.T) {
	cfg, err := NewWorkConfig("10:00", "19:00", 30, 60, 5)
	if err != nil {
		t.Fatalf("NewWorkConfig() error = %v", err)
	}

	if got := DeriveStatus(punchAt(10, 30), nil, cfg); got != StatusPresent {
		t.Errorf("arrival at grace boundary = %v, want %v", got, StatusPresent)
	}
	if got := DeriveStatus(punchAt(10, 31), nil, cfg); got != StatusLate {
		t.Errorf("arrival past grace = %v, want %v", got, StatusLate)
	}
	if got := DeriveStatus(punchAt(10, 0), punchAt(14, 30), cfg); got != StatusHalfDay {
		t.Errorf("short shift = %v, want %v", got, StatusHalfDay)
	}
}

func TestNewWorkConfigInvalidTime(t *testing.T) {
	if _, err := NewWorkConfig("9am", "18:00", 15, 30, 4); err == nil {
		t.Error("NewWorkConfig() expected error for invalid start time")
	}
	if _, err := NewWorkConfig("09:00", "6pm", 15, 30, 4); err == nil {
		t.Error("NewWorkConfig() expected error for invalid end time")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPresent, StatusAbsent, StatusLate, StatusEarly, StatusHalfDay} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	if ValidStatus("Holiday") {
		t.Error(`ValidStatus("Holiday") = true, want false`)
	}
}
