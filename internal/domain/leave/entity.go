package leave

import "time"

type RequestStatus string

const (
	StatusPending   RequestStatus = "Pending"
	StatusApproved  RequestStatus = "Approved"
	StatusRejected  RequestStatus = "Rejected"
	StatusCancelled RequestStatus = "Cancelled"
)

type LeaveType struct {
	ID              string
	Name            string
	Code            string
	AnnualQuota     float64
	IsPaid          bool
	CarryForward    bool
	MaxCarryForward float64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DefaultLeaveTypes seeds the catalog a fresh installation starts with.
func DefaultLeaveTypes() []LeaveType {
	return []LeaveType{
		{Name: "Casual Leave", Code: "CL", AnnualQuota: 12, IsPaid: true, IsActive: true},
		{Name: "Sick Leave", Code: "SL", AnnualQuota: 12, IsPaid: true, IsActive: true},
		{Name: "Earned Leave", Code: "EL", AnnualQuota: 15, IsPaid: true, CarryForward: true, MaxCarryForward: 30, IsActive: true},
		{Name: "Loss of Pay", Code: "LOP", AnnualQuota: 0, IsPaid: false, IsActive: true},
	}
}

type LeaveBalance struct {
	ID           string
	EmployeeID   string
	LeaveTypeID  string
	Year         int
	Allocated    float64
	Used         float64
	Pending      float64
	CarryForward float64

	// Joined fields.
	LeaveTypeName string
	LeaveTypeCode string
	IsPaid        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Available is the balance an employee can still request against.
func (b *LeaveBalance) Available() float64 {
	return b.Allocated + b.CarryForward - b.Used - b.Pending
}

type LeaveRequest struct {
	ID            string
	EmployeeID    string
	LeaveTypeID   string
	StartDate     time.Time
	EndDate       time.Time
	IsHalfDay     bool
	Days          float64
	Reason        string
	Status        RequestStatus
	ActionBy      string
	ActionDate    *time.Time
	ActionRemarks string

	// Joined fields.
	EmployeeName  string
	LeaveTypeName string
	LeaveTypeCode string
	IsPaid        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InclusiveDays counts calendar days between start and end inclusive,
// or 0.5 when the request is a half day.
func InclusiveDays(start, end time.Time, halfDay bool) float64 {
	if halfDay {
		return 0.5
	}
	return end.Sub(start).Hours()/24 + 1
}

type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	Type        string // National, Regional, Company, or Optional
	Description string
	IsOptional  bool
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidHolidayTypes are the recognized holiday categories.
var ValidHolidayTypes = []string{"National", "Regional", "Company", "Optional"}

// DefaultHolidays returns the seed national holiday calendar for a year.
func DefaultHolidays(year int) []Holiday {
	dates := []struct {
		name  string
		month time.Month
		day   int
	}{
		{"Republic Day", time.January, 26},
		{"Holi", time.March, 14},
		{"Good Friday", time.March, 29},
		{"Independence Day", time.August, 15},
		{"Gandhi Jayanti", time.October, 2},
		{"Diwali", time.November, 1},
		{"Christmas", time.December, 25},
	}

	holidays := make([]Holiday, 0, len(dates))
	for _, d := range dates {
		holidays = append(holidays, Holiday{
			Name:     d.name,
			Date:     time.Date(year, d.month, d.day, 0, 0, 0, 0, time.UTC),
			Type:     "National",
			IsActive: true,
		})
	}
	return holidays
}
