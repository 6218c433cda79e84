package attendance

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
	StatusEarly   Status = "Early"
	StatusHalfDay Status = "Half-Day"
)

// ValidStatus reports whether s is one of the attendance statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusEarly, StatusHalfDay:
		return true
	}
	return false
}

// WorkConfig holds the thresholds the status derivation runs against. It is
// built once from configuration and passed around explicitly; there is no
// package-level default that tests would have to mutate.
type WorkConfig struct {
	StandardStartMinutes       int // minutes since midnight, e.g. 540 for 09:00
	StandardEndMinutes         int // minutes since midnight, e.g. 1080 for 18:00
	LateThresholdMinutes       int
	EarlyLeaveThresholdMinutes int
	HalfDayThresholdHours      float64
}

// NewWorkConfig parses start/end wall-clock times in 15:04 form.
func NewWorkConfig(standardStart, standardEnd string, lateThresholdMinutes, earlyLeaveThresholdMinutes int, halfDayThresholdHours float64) (WorkConfig, error) {
	startMins, err := parseClockMinutes(standardStart)
	if err != nil {
		return WorkConfig{}, fmt.Errorf("invalid standard start time: %w", err)
	}
	endMins, err := parseClockMinutes(standardEnd)
	if err != nil {
		return WorkConfig{}, fmt.Errorf("invalid standard end time: %w", err)
	}

	return WorkConfig{
		StandardStartMinutes:       startMins,
		StandardEndMinutes:         endMins,
		LateThresholdMinutes:       lateThresholdMinutes,
		EarlyLeaveThresholdMinutes: earlyLeaveThresholdMinutes,
		HalfDayThresholdHours:      halfDayThresholdHours,
	}, nil
}

// DefaultWorkConfig returns the standard 09:00-18:00 day with a 15 minute
// grace period, a 30 minute early-leave window and a 4 hour half-day floor.
func DefaultWorkConfig() WorkConfig {
	return WorkConfig{
		StandardStartMinutes:       9 * 60,
		StandardEndMinutes:         18 * 60,
		LateThresholdMinutes:       15,
		EarlyLeaveThresholdMinutes: 30,
		HalfDayThresholdHours:      4,
	}
}

func parseClockMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// DeriveStatus classifies a day's attendance from its punch timestamps.
// Rules are evaluated in order, first match wins:
//
//  1. no punch-in: Absent
//  2. punch-in only (still at work): Late when past the grace period, else Present
//  3. both punches: Half-Day when worked hours fall below the threshold,
//     else Early when leaving before the early-leave window,
//     else Late when arriving past the grace period,
//     else Present
//
// A short shift that is also late is reported as Half-Day, not Late: the
// worked-hours check deliberately runs before the arrival/departure checks.
func DeriveStatus(punchIn, punchOut *time.Time, cfg WorkConfig) Status {
	if punchIn == nil {
		return StatusAbsent
	}

	lateCutoff := cfg.StandardStartMinutes + cfg.LateThresholdMinutes

	if punchOut == nil {
		if minuteOfDay(*punchIn) > lateCutoff {
			return StatusLate
		}
		return StatusPresent
	}

	workedHours := punchOut.Sub(*punchIn).Hours()
	if workedHours < cfg.HalfDayThresholdHours {
		return StatusHalfDay
	}

	if minuteOfDay(*punchOut) < cfg.StandardEndMinutes-cfg.EarlyLeaveThresholdMinutes {
		return StatusEarly
	}

	if minuteOfDay(*punchIn) > lateCutoff {
		return StatusLate
	}

	return StatusPresent
}
