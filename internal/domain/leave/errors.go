package leave

import "errors"

var (
	ErrLeaveTypeNotFound       = errors.New("leave type not found")
	ErrLeaveTypeCodeExists     = errors.New("leave type code already exists")
	ErrBalanceNotFound         = errors.New("leave balance not found")
	ErrInsufficientBalance     = errors.New("insufficient leave balance")
	ErrRequestNotFound         = errors.New("leave request not found")
	ErrRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrRequestNotCancellable   = errors.New("only pending or approved leave requests can be cancelled")
	ErrOverlappingRequest      = errors.New("an overlapping leave request already exists")
	ErrHolidayNotFound         = errors.New("holiday not found")
	ErrHolidayExists           = errors.New("a holiday already exists on this date")
	ErrInvalidDateRange        = errors.New("end date must not be before start date")
)
