package attendance

import (
	"time"
)

type ApprovalStatus string

const (
	ApprovalNone     ApprovalStatus = "None"
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

// Attendance is one record per (employee, calendar day). The unique index on
// (employee_id, date) is enforced by the schema.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	Status       Status
	PunchIn      *time.Time
	PunchOut     *time.Time
	WorkingHours float64 // decimal hours between punches

	// Manual correction workflow
	IsManualCorrection    bool
	CorrectionReason      string
	CorrectionRequestedBy string
	OriginalStatus        Status
	OriginalPunchIn       *time.Time
	OriginalPunchOut      *time.Time
	ApprovalStatus        ApprovalStatus
	ApprovedBy            string
	ApprovalDate          *time.Time
	ApprovalRemarks       string

	Remarks   string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeEmail *string
}

// CalculateWorkingHours recomputes the decimal worked hours from the punches.
func (a *Attendance) CalculateWorkingHours() float64 {
	if a.PunchIn != nil && a.PunchOut != nil {
		a.WorkingHours = a.PunchOut.Sub(*a.PunchIn).Hours()
	}
	return a.WorkingHours
}

// ApplyCorrection snapshots the current values and applies the requested
// override, moving the record into the Pending approval sub-state. An explicit
// corrected status wins; otherwise the status is re-derived from the corrected
// punch times.
func (a *Attendance) ApplyCorrection(correctedPunchIn, correctedPunchOut *time.Time, correctedStatus Status, reason, requestedBy string, cfg WorkConfig) error {
	if a.ApprovalStatus == ApprovalPending {
		return ErrCorrectionPending
	}

	a.OriginalStatus = a.Status
	a.OriginalPunchIn = a.PunchIn
	a.OriginalPunchOut = a.PunchOut

	if correctedPunchIn != nil {
		a.PunchIn = correctedPunchIn
	}
	if correctedPunchOut != nil {
		a.PunchOut = correctedPunchOut
	}

	if correctedStatus != "" {
		a.Status = correctedStatus
	} else if correctedPunchIn != nil || correctedPunchOut != nil {
		a.Status = DeriveStatus(a.PunchIn, a.PunchOut, cfg)
	}

	a.CalculateWorkingHours()

	a.IsManualCorrection = true
	a.CorrectionReason = reason
	a.CorrectionRequestedBy = requestedBy
	a.ApprovalStatus = ApprovalPending

	return nil
}

// ResolveCorrection moves a Pending correction into a terminal state. Approval
// retains the corrected values; rejection restores the original snapshot.
// Approved and Rejected are final until a new correction request is made.
func (a *Attendance) ResolveCorrection(approve bool, approvedBy, remarks string, now time.Time) error {
	if a.ApprovalStatus != ApprovalPending {
		return ErrCorrectionAlreadyProcessed
	}

	a.ApprovedBy = approvedBy
	a.ApprovalDate = &now
	a.ApprovalRemarks = remarks

	if approve {
		a.ApprovalStatus = ApprovalApproved
		return nil
	}

	a.ApprovalStatus = ApprovalRejected
	if a.OriginalStatus != "" {
		a.Status = a.OriginalStatus
	}
	if a.OriginalPunchIn != nil {
		a.PunchIn = a.OriginalPunchIn
	}
	if a.OriginalPunchOut != nil {
		a.PunchOut = a.OriginalPunchOut
	}
	a.CalculateWorkingHours()

	return nil
}
