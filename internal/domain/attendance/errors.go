package attendance

import "errors"

// Attendance domain errors
var (
	// Punch errors
	ErrAlreadyPunchedIn  = errors.New("already punched in today")
	ErrAlreadyPunchedOut = errors.New("already punched out today")
	ErrNotPunchedIn      = errors.New("no punch in record found for today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceExists   = errors.New("attendance already marked for this employee on this date")

	// Correction workflow errors
	ErrCorrectionPending          = errors.New("a correction request is already pending for this date")
	ErrCorrectionAlreadyProcessed = errors.New("this correction request has already been processed")
)
