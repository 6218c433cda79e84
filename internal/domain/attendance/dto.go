package attendance

import (
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

type PunchRequest struct {
	EmployeeID string `json:"employeeId"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkAttendanceRequest struct {
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	PunchIn    *string `json:"punchIn,omitempty"`
	PunchOut   *string `json:"punchOut,omitempty"`
	Remarks    *string `json:"remarks,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "is required"})
	} else if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !ValidStatus(Status(r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be Present, Absent, Late, Early, or Half-Day"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID       string  `json:"-"`
	Date     *string `json:"date,omitempty"`
	Status   *string `json:"status,omitempty"`
	PunchIn  *string `json:"punchIn,omitempty"`
	PunchOut *string `json:"punchOut,omitempty"`
	Remarks  *string `json:"remarks,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil && !validator.IsValidDate(*r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Status != nil && !ValidStatus(Status(*r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be Present, Absent, Late, Early, or Half-Day"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CorrectionRequest struct {
	EmployeeID        string  `json:"employeeId"`
	Date              string  `json:"date"`
	CorrectedPunchIn  *string `json:"correctedPunchIn,omitempty"`
	CorrectedPunchOut *string `json:"correctedPunchOut,omitempty"`
	CorrectedStatus   *string `json:"correctedStatus,omitempty"`
	Reason            string  `json:"reason"`
}

func (r *CorrectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "is required"})
	} else if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if r.CorrectedStatus != nil && !ValidStatus(Status(*r.CorrectedStatus)) {
		errs = append(errs, validator.ValidationError{Field: "correctedStatus", Message: "must be Present, Absent, Late, Early, or Half-Day"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessCorrectionRequest struct {
	ID         string  `json:"-"`
	Action     string  `json:"action"` // "approve" or "reject"
	Remarks    *string `json:"remarks,omitempty"`
	ApprovedBy *string `json:"approvedBy,omitempty"`
}

func (r *ProcessCorrectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Action != "approve" && r.Action != "reject" {
		errs = append(errs, validator.ValidationError{Field: "action", Message: "must be 'approve' or 'reject'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeID     string
	Date           string
	StartDate      string
	EndDate        string
	ApprovalStatus string
}

type AttendanceResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employeeId"`
	EmployeeName       *string `json:"employeeName,omitempty"`
	Date               string  `json:"date"`
	Status             string  `json:"status"`
	PunchIn            *string `json:"punchIn"`
	PunchOut           *string `json:"punchOut"`
	WorkingHours       float64 `json:"workingHours"`
	ApprovalStatus     string  `json:"approvalStatus"`
	IsManualCorrection bool    `json:"isManualCorrection"`
	CorrectionReason   string  `json:"correctionReason,omitempty"`
	ApprovalRemarks    string  `json:"approvalRemarks,omitempty"`
	Remarks            string  `json:"remarks,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

type PunchStatusResponse struct {
	HasPunchedIn  bool                `json:"hasPunchedIn"`
	HasPunchedOut bool                `json:"hasPunchedOut"`
	PunchIn       *string             `json:"punchIn"`
	PunchOut      *string             `json:"punchOut"`
	Status        *string             `json:"status"`
	WorkingHours  float64             `json:"workingHours"`
	Attendance    *AttendanceResponse `json:"attendance"`
}

type StatusCounts struct {
	TotalPresent int `json:"totalPresent"`
	TotalAbsent  int `json:"totalAbsent"`
	TotalLate    int `json:"totalLate"`
	TotalEarly   int `json:"totalEarly"`
	TotalHalfDay int `json:"totalHalfDay"`
}

type EmployeeAttendanceResponse struct {
	Count int                  `json:"count"`
	Stats EmployeeStats        `json:"stats"`
	Data  []AttendanceResponse `json:"data"`
}

type EmployeeStats struct {
	StatusCounts
	TotalWorkingHours float64 `json:"totalWorkingHours"`
}

type CalendarSummary struct {
	StatusCounts
	PendingApprovals int `json:"pendingApprovals"`
}

type CalendarResponse struct {
	Calendar map[string][]AttendanceResponse `json:"calendar"`
	Summary  CalendarSummary                 `json:"summary"`
}

// DashboardStats counts today's statuses literally; half-days and paid leave
// are not folded in the way the payroll aggregator does.
type DashboardStats struct {
	TotalEmployees   int64 `json:"totalEmployees"`
	PresentToday     int   `json:"presentToday"`
	AbsentToday      int   `json:"absentToday"`
	LateToday        int   `json:"lateToday"`
	EarlyToday       int   `json:"earlyToday"`
	HalfDayToday     int   `json:"halfDayToday"`
	PendingApprovals int64 `json:"pendingApprovals"`
	NotMarked        int64 `json:"notMarked"`
}

// ParseDateTime accepts the timestamp layouts clients send for punch times.
func ParseDateTime(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
	}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
