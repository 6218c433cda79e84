package response

import (
	"errors"
	"net/http"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/auth"
	"github.com/hrmslite/hrms-backend-go/internal/domain/document"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/domain/leave"
	"github.com/hrmslite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrmslite/hrms-backend-go/internal/domain/performance"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, "Already punched in today")
	case errors.Is(err, attendance.ErrAlreadyPunchedOut):
		Conflict(w, "Already punched out today")
	case errors.Is(err, attendance.ErrNotPunchedIn):
		BadRequest(w, "No punch in record found for today", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, "Attendance already marked for this date")
	case errors.Is(err, attendance.ErrCorrectionPending):
		Conflict(w, "A correction request is already pending for this date")
	case errors.Is(err, attendance.ErrCorrectionAlreadyProcessed):
		Conflict(w, "Correction request already processed")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeCodeExists):
		Conflict(w, "Leave type code already exists")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrRequestNotCancellable):
		Conflict(w, "Only pending or approved leave requests can be cancelled")
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "An overlapping leave request already exists")
	case errors.Is(err, leave.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, leave.ErrHolidayExists):
		Conflict(w, "A holiday already exists on this date")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalaryStructureNotFound):
		NotFound(w, "Salary structure not found")
	case errors.Is(err, payroll.ErrSalaryStructureExists):
		Conflict(w, "Employee already has a salary structure")
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found")
	case errors.Is(err, payroll.ErrPayrollLocked):
		Conflict(w, "Payroll is locked")
	case errors.Is(err, payroll.ErrPayrollNotProcessed):
		Conflict(w, "Payroll has not been processed")
	case errors.Is(err, payroll.ErrNoWorkingDays):
		BadRequest(w, "Month has no working days", nil)
	case errors.Is(err, payroll.ErrBonusNotFound):
		NotFound(w, "Bonus not found")
	case errors.Is(err, payroll.ErrBonusAlreadyProcessed):
		Conflict(w, "Bonus already processed")

	// Document domain errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrFileTooLarge):
		BadRequest(w, "File exceeds the maximum allowed size", nil)
	case errors.Is(err, document.ErrInvalidCategory):
		BadRequest(w, "Invalid document category", nil)

	// Performance domain errors
	case errors.Is(err, performance.ErrGoalNotFound):
		NotFound(w, "Goal not found")
	case errors.Is(err, performance.ErrReviewNotFound):
		NotFound(w, "Performance review not found")
	case errors.Is(err, performance.ErrInvalidRating):
		BadRequest(w, "Ratings must be between 1 and 5", nil)
	case errors.Is(err, performance.ErrPromotionNotFound):
		NotFound(w, "Promotion not found")
	case errors.Is(err, performance.ErrPromotionNotApproved):
		BadRequest(w, "Promotion must be approved first", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
