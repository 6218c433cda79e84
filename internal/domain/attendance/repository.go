package attendance

import "context"

type AttendanceRepository interface {
	Create(ctx context.Context, att *Attendance) error
	GetByID(ctx context.Context, id string) (*Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Attendance, error)
	Update(ctx context.Context, att *Attendance) error
	Delete(ctx context.Context, id string) error
	DeleteByEmployee(ctx context.Context, employeeID string) error
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
	ListByEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]Attendance, error)
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]Attendance, error)
	ListPendingCorrections(ctx context.Context) ([]Attendance, error)
	CountPendingCorrections(ctx context.Context) (int64, error)
	CountByStatusAndRange(ctx context.Context, employeeID, startDate, endDate string, statuses []Status) (int, error)
}

type AttendanceService interface {
	PunchIn(ctx context.Context, req *PunchRequest) (*AttendanceResponse, error)
	PunchOut(ctx context.Context, req *PunchRequest) (*AttendanceResponse, error)
	PunchStatus(ctx context.Context, employeeID string) (*PunchStatusResponse, error)
	Mark(ctx context.Context, req *MarkAttendanceRequest) (*AttendanceResponse, error)
	Update(ctx context.Context, req *UpdateAttendanceRequest) (*AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID, startDate, endDate string) (*EmployeeAttendanceResponse, error)
	RequestCorrection(ctx context.Context, req *CorrectionRequest) (*AttendanceResponse, error)
	ListPendingCorrections(ctx context.Context) ([]AttendanceResponse, error)
	ProcessCorrection(ctx context.Context, req *ProcessCorrectionRequest) (*AttendanceResponse, error)
	Calendar(ctx context.Context, month, year int) (*CalendarResponse, error)
	Stats(ctx context.Context) (*DashboardStats, error)
}
