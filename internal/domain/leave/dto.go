package leave

import (
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

type CreateLeaveTypeRequest struct {
	Name            string  `json:"name"`
	Code            string  `json:"code"`
	AnnualQuota     float64 `json:"annualQuota"`
	IsPaid          *bool   `json:"isPaid,omitempty"`
	CarryForward    bool    `json:"carryForward"`
	MaxCarryForward float64 `json:"maxCarryForward"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	}
	if r.AnnualQuota < 0 {
		errs = append(errs, validator.ValidationError{Field: "annualQuota", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveTypeResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Code            string  `json:"code"`
	AnnualQuota     float64 `json:"annualQuota"`
	IsPaid          bool    `json:"isPaid"`
	CarryForward    bool    `json:"carryForward"`
	MaxCarryForward float64 `json:"maxCarryForward"`
	IsActive        bool    `json:"isActive"`
}

type ApplyLeaveRequest struct {
	EmployeeID  string `json:"employeeId"`
	LeaveTypeID string `json:"leaveTypeId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	IsHalfDay   bool   `json:"isHalfDay"`
	Reason      string `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{Field: "leaveTypeId", Message: "is required"})
	}
	if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !validator.IsValidDate(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessLeaveRequest struct {
	ID       string  `json:"-"`
	Action   string  `json:"action"` // "approve" or "reject"
	Remarks  *string `json:"remarks,omitempty"`
	ActionBy *string `json:"actionBy,omitempty"`
}

func (r *ProcessLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Action != "approve" && r.Action != "reject" {
		errs = append(errs, validator.ValidationError{Field: "action", Message: "must be 'approve' or 'reject'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestFilter struct {
	EmployeeID  string
	LeaveTypeID string
	Status      string
	StartDate   string
	EndDate     string
}

type LeaveRequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employeeId"`
	EmployeeName  string  `json:"employeeName,omitempty"`
	LeaveTypeID   string  `json:"leaveTypeId"`
	LeaveTypeName string  `json:"leaveTypeName,omitempty"`
	LeaveTypeCode string  `json:"leaveTypeCode,omitempty"`
	IsPaid        bool    `json:"isPaid"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	IsHalfDay     bool    `json:"isHalfDay"`
	Days          float64 `json:"days"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	ActionBy      string  `json:"actionBy,omitempty"`
	ActionDate    *string `json:"actionDate,omitempty"`
	ActionRemarks string  `json:"actionRemarks,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

type LeaveBalanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employeeId"`
	LeaveTypeID   string  `json:"leaveTypeId"`
	LeaveTypeName string  `json:"leaveTypeName"`
	LeaveTypeCode string  `json:"leaveTypeCode"`
	IsPaid        bool    `json:"isPaid"`
	Year          int     `json:"year"`
	Allocated     float64 `json:"allocated"`
	Used          float64 `json:"used"`
	Pending       float64 `json:"pending"`
	CarryForward  float64 `json:"carryForward"`
	Available     float64 `json:"available"`
}

type CreateHolidayRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
	IsOptional  bool   `json:"isOptional"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Type != "" && !isValidHolidayType(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'National', 'Regional', 'Company', or 'Optional'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func isValidHolidayType(t string) bool {
	for _, valid := range ValidHolidayTypes {
		if t == valid {
			return true
		}
	}
	return false
}

type UpdateHolidayRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	IsOptional  *bool   `json:"isOptional"`
	IsActive    *bool   `json:"isActive"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Date != nil && !validator.IsValidDate(*r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Type != nil && !isValidHolidayType(*r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'National', 'Regional', 'Company', or 'Optional'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	IsOptional  bool   `json:"isOptional"`
	IsActive    bool   `json:"isActive"`
}

type LeaveStats struct {
	PendingRequests   int64             `json:"pendingRequests"`
	ApprovedThisMonth int64             `json:"approvedThisMonth"`
	OnLeaveToday      int64             `json:"onLeaveToday"`
	UpcomingHolidays  []HolidayResponse `json:"upcomingHolidays"`
}
