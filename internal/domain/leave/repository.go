package leave

import "context"

type LeaveTypeRepository interface {
	Create(ctx context.Context, lt *LeaveType) error
	GetByID(ctx context.Context, id string) (*LeaveType, error)
	GetByCode(ctx context.Context, code string) (*LeaveType, error)
	List(ctx context.Context, activeOnly bool) ([]LeaveType, error)
	Update(ctx context.Context, lt *LeaveType) error
	Count(ctx context.Context) (int64, error)
}

type LeaveBalanceRepository interface {
	Create(ctx context.Context, b *LeaveBalance) error
	GetByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID string, year int) (*LeaveBalance, error)
	ListByEmployee(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)

	// ApplyPending atomically moves days into the pending bucket. It only
	// succeeds when the available balance covers the requested days and
	// returns ErrInsufficientBalance otherwise.
	ApplyPending(ctx context.Context, employeeID, leaveTypeID string, year int, days float64) error
	// ApprovePending moves days from pending to used.
	ApprovePending(ctx context.Context, employeeID, leaveTypeID string, year int, days float64) error
	// ReleasePending returns pending days to the available pool.
	ReleasePending(ctx context.Context, employeeID, leaveTypeID string, year int, days float64) error
	// ReleaseUsed returns used days to the available pool.
	ReleaseUsed(ctx context.Context, employeeID, leaveTypeID string, year int, days float64) error
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, req *LeaveRequest) error
	GetByID(ctx context.Context, id string) (*LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
	Update(ctx context.Context, req *LeaveRequest) error
	HasOverlapping(ctx context.Context, employeeID, startDate, endDate string) (bool, error)
	CountByStatus(ctx context.Context, status RequestStatus) (int64, error)
	CountApprovedInRange(ctx context.Context, startDate, endDate string) (int64, error)
	CountOnLeave(ctx context.Context, date string) (int64, error)
	// ApprovedPaidDays sums the paid leave days an employee has approved
	// within the window, clipped to the window bounds.
	ApprovedPaidDays(ctx context.Context, employeeID, startDate, endDate string) (float64, error)
	// ApprovedUnpaidDays is the same sum over unpaid leave types.
	ApprovedUnpaidDays(ctx context.Context, employeeID, startDate, endDate string) (float64, error)
}

type HolidayRepository interface {
	Create(ctx context.Context, h *Holiday) error
	GetByID(ctx context.Context, id string) (*Holiday, error)
	GetByDate(ctx context.Context, date string) (*Holiday, error)
	List(ctx context.Context, year int) ([]Holiday, error)
	ListInRange(ctx context.Context, startDate, endDate string) ([]Holiday, error)
	Update(ctx context.Context, h *Holiday) error
	Delete(ctx context.Context, id string) error
	ListUpcoming(ctx context.Context, from string, limit int) ([]Holiday, error)
}

type LeaveService interface {
	CreateLeaveType(ctx context.Context, req *CreateLeaveTypeRequest) (*LeaveTypeResponse, error)
	ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	EnsureDefaultLeaveTypes(ctx context.Context) error

	Apply(ctx context.Context, req *ApplyLeaveRequest) (*LeaveRequestResponse, error)
	Process(ctx context.Context, req *ProcessLeaveRequest) (*LeaveRequestResponse, error)
	Cancel(ctx context.Context, id string) (*LeaveRequestResponse, error)
	ListRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)

	Balances(ctx context.Context, employeeID string, year int) ([]LeaveBalanceResponse, error)

	CreateHoliday(ctx context.Context, req *CreateHolidayRequest) (*HolidayResponse, error)
	UpdateHoliday(ctx context.Context, req *UpdateHolidayRequest) (*HolidayResponse, error)
	ListHolidays(ctx context.Context, year int) ([]HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
	InitializeHolidays(ctx context.Context, year int) error

	Stats(ctx context.Context) (*LeaveStats, error)
}
