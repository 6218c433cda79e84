package attendance

import (
	"testing"
	"time"
)

func TestCalculateWorkingHours(t *testing.T) {
	att := &Attendance{
		PunchIn:  punchAt(9, 0),
		PunchOut: punchAt(17, 30),
	}
	if got := att.CalculateWorkingHours(); got != 8.5 {
		t.Errorf("CalculateWorkingHours() = %v, want 8.5", got)
	}

	open := &Attendance{PunchIn: punchAt(9, 0)}
	if got := open.CalculateWorkingHours(); got != 0 {
		t.Errorf("CalculateWorkingHours() without punch out = %v, want 0", got)
	}
}

func TestApplyCorrection(t *testing.T) {
	cfg := DefaultWorkConfig()
	att := &Attendance{
		Status:   StatusAbsent,
		PunchIn:  nil,
		PunchOut: nil,
	}

	err := att.ApplyCorrection(punchAt(9, 0), punchAt(18, 0), "", "forgot to punch", "EMP001", cfg)
	if err != nil {
		t.Fatalf("ApplyCorrection() error = %v", err)
	}

	if att.Status != StatusPresent {
		t.Errorf("Status = %v, want %v", att.Status, StatusPresent)
	}
	if att.OriginalStatus != StatusAbsent {
		t.Errorf("OriginalStatus = %v, want %v", att.OriginalStatus, StatusAbsent)
	}
	if att.ApprovalStatus != ApprovalPending {
		t.Errorf("ApprovalStatus = %v, want %v", att.ApprovalStatus, ApprovalPending)
	}
	if !att.IsManualCorrection {
		t.Error("IsManualCorrection = false, want true")
	}
	if att.WorkingHours != 9 {
		t.Errorf("WorkingHours = %v, want 9", att.WorkingHours)
	}
}

func TestApplyCorrectionExplicitStatus(t *testing.T) {
	cfg := DefaultWorkConfig()
	att := &Attendance{Status: StatusAbsent}

	err := att.ApplyCorrection(nil, nil, StatusHalfDay, "worked from home half day", "EMP002", cfg)
	if err != nil {
		t.Fatalf("ApplyCorrection() error = %v", err)
	}
	if att.Status != StatusHalfDay {
		t.Errorf("Status = %v, want %v", att.Status, StatusHalfDay)
	}
}

func TestApplyCorrectionWhilePending(t *testing.T) {
	cfg := DefaultWorkConfig()
	att := &Attendance{Status: StatusAbsent, ApprovalStatus: ApprovalPending}

	err := att.ApplyCorrection(punchAt(9, 0), nil, "", "duplicate", "EMP001", cfg)
	if err != ErrCorrectionPending {
		t.Errorf("ApplyCorrection() error = %v, want %v", err, ErrCorrectionPending)
	}
}

func TestResolveCorrectionApprove(t *testing.T) {
	cfg := DefaultWorkConfig()
	att := &Attendance{Status: StatusAbsent}
	if err := att.ApplyCorrection(punchAt(9, 0), punchAt(18, 0), "", "forgot", "EMP001", cfg); err != nil {
		t.Fatal(err)
	}

	now := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	if err := att.ResolveCorrection(true, "admin", "ok", now); err != nil {
		t.Fatalf("ResolveCorrection() error = %v", err)
	}

	if att.ApprovalStatus != ApprovalApproved {
		t.Errorf("ApprovalStatus = %v, want %v", att.ApprovalStatus, ApprovalApproved)
	}
	if att.Status != StatusPresent {
		t.Errorf("Status = %v, corrected value must be retained", att.Status)
	}
	if att.ApprovedBy != "admin" || att.ApprovalDate == nil {
		t.Error("approval metadata not recorded")
	}
}

func TestResolveCorrectionReject(t *testing.T) {
	cfg := DefaultWorkConfig()
	att := &Attendance{
		Status:   StatusLate,
		PunchIn:  punchAt(9, 30),
		PunchOut: punchAt(18, 0),
	}
	if err := att.ApplyCorrection(punchAt(9, 0), nil, "", "clock was wrong", "EMP001", cfg); err != nil {
		t.Fatal(err)
	}

	now := time.Now()
	if err := att.ResolveCorrection(false, "admin", "no proof", now); err != nil {
		t.Fatalf("ResolveCorrection() error = %v", err)
	}

	if att.ApprovalStatus != ApprovalRejected {
		t.Errorf("ApprovalStatus = %v, want %v", att.ApprovalStatus, ApprovalRejected)
	}
	if att.Status != StatusLate {
		t.Errorf("Status = %v, original must be restored on rejection", att.Status)
	}
	if !att.PunchIn.Equal(*punchAt(9, 30)) {
		t.Errorf("PunchIn = %v, original must be restored on rejection", att.PunchIn)
	}
}

func TestResolveCorrectionAlreadyProcessed(t *testing.T) {
	att := &Attendance{ApprovalStatus: ApprovalApproved}

	err := att.ResolveCorrection(true, "admin", "", time.Now())
	if err != ErrCorrectionAlreadyProcessed {
		t.Errorf("ResolveCorrection() error = %v, want %v", err, ErrCorrectionAlreadyProcessed)
	}
}
