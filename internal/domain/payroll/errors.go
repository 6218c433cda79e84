package payroll

import "errors"

var (
	ErrSalaryStructureNotFound = errors.New("salary structure not found")
	ErrSalaryStructureExists   = errors.New("employee already has a salary structure")
	ErrPayrollNotFound         = errors.New("payroll not found")
	ErrPayrollLocked           = errors.New("payroll is locked")
	ErrPayrollNotProcessed     = errors.New("payroll has not been processed")
	ErrNoWorkingDays           = errors.New("month has no working days")
	ErrBonusNotFound           = errors.New("bonus not found")
	ErrBonusAlreadyProcessed   = errors.New("bonus already processed")
	ErrConfigNotFound          = errors.New("payroll config not found")
)
