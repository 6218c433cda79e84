package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	workConfig attendance.WorkConfig
	now        func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	workConfig attendance.WorkConfig,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		workConfig:           workConfig,
		now:                  time.Now,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

func toResponse(att *attendance.Attendance) *attendance.AttendanceResponse {
	return &attendance.AttendanceResponse{
		ID:                 att.ID,
		EmployeeID:         att.EmployeeID,
		EmployeeName:       att.EmployeeName,
		Date:               att.Date.Format("2006-01-02"),
		Status:             string(att.Status),
		PunchIn:            timePtrToString(att.PunchIn),
		PunchOut:           timePtrToString(att.PunchOut),
		WorkingHours:       roundHours(att.WorkingHours),
		ApprovalStatus:     string(att.ApprovalStatus),
		IsManualCorrection: att.IsManualCorrection,
		CorrectionReason:   att.CorrectionReason,
		ApprovalRemarks:    att.ApprovalRemarks,
		Remarks:            att.Remarks,
		CreatedAt:          att.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:          att.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func (s *AttendanceServiceImpl) PunchIn(ctx context.Context, req *attendance.PunchRequest) (*attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Format("2006-01-02")

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return nil, fmt.Errorf("failed to look up today's attendance: %w", err)
	}

	if existing != nil {
		if existing.PunchIn != nil {
			return nil, attendance.ErrAlreadyPunchedIn
		}
		existing.PunchIn = &now
		existing.Status = attendance.DeriveStatus(existing.PunchIn, existing.PunchOut, s.workConfig)
		existing.CalculateWorkingHours()
		if err := s.AttendanceRepository.Update(ctx, existing); err != nil {
			return nil, err
		}
		return toResponse(existing), nil
	}

	att := &attendance.Attendance{
		EmployeeID:     req.EmployeeID,
		Date:           time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		PunchIn:        &now,
		ApprovalStatus: attendance.ApprovalNone,
	}
	att.Status = attendance.DeriveStatus(att.PunchIn, nil, s.workConfig)
	if err := s.AttendanceRepository.Create(ctx, att); err != nil {
		return nil, err
	}
	return toResponse(att), nil
}

func (s *AttendanceServiceImpl) PunchOut(ctx context.Context, req *attendance.PunchRequest) (*attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Format("2006-01-02")

	att, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return nil, attendance.ErrNotPunchedIn
		}
		return nil, err
	}
	if att.PunchIn == nil {
		return nil, attendance.ErrNotPunchedIn
	}
	if att.PunchOut != nil {
		return nil, attendance.ErrAlreadyPunchedOut
	}

	att.PunchOut = &now
	att.CalculateWorkingHours()
	att.Status = attendance.DeriveStatus(att.PunchIn, att.PunchOut, s.workConfig)

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return nil, err
	}
	return toResponse(att), nil
}

func (s *AttendanceServiceImpl) PunchStatus(ctx context.Context, employeeID string) (*attendance.PunchStatusResponse, error) {
	today := s.now().Format("2006-01-02")

	att, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return &attendance.PunchStatusResponse{}, nil
		}
		return nil, err
	}

	status := string(att.Status)
	return &attendance.PunchStatusResponse{
		HasPunchedIn:  att.PunchIn != nil,
		HasPunchedOut: att.PunchOut != nil,
		PunchIn:       timePtrToString(att.PunchIn),
		PunchOut:      timePtrToString(att.PunchOut),
		Status:        &status,
		WorkingHours:  roundHours(att.WorkingHours),
		Attendance:    toResponse(att),
	}, nil
}

// Mark creates or overwrites a day's record with an explicit status. Admin
// marking bypasses status derivation.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req *attendance.MarkAttendanceRequest) (*attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	punchIn, punchOut, err := parsePunches(req.PunchIn, req.PunchOut)
	if err != nil {
		return nil, err
	}

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.Status = attendance.Status(req.Status)
		existing.PunchIn = punchIn
		existing.PunchOut = punchOut
		existing.CalculateWorkingHours()
		if req.Remarks != nil {
			existing.Remarks = *req.Remarks
		}
		if err := s.AttendanceRepository.Update(ctx, existing); err != nil {
			return nil, err
		}
		return toResponse(existing), nil
	}

	att := &attendance.Attendance{
		EmployeeID:     req.EmployeeID,
		Date:           date,
		Status:         attendance.Status(req.Status),
		PunchIn:        punchIn,
		PunchOut:       punchOut,
		ApprovalStatus: attendance.ApprovalNone,
	}
	att.CalculateWorkingHours()
	if req.Remarks != nil {
		att.Remarks = *req.Remarks
	}
	if err := s.AttendanceRepository.Create(ctx, att); err != nil {
		return nil, err
	}
	return toResponse(att), nil
}

func (s *AttendanceServiceImpl) Update(ctx context.Context, req *attendance.UpdateAttendanceRequest) (*attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	att, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		att.Status = attendance.Status(*req.Status)
	}
	if req.PunchIn != nil {
		t, err := attendance.ParseDateTime(*req.PunchIn)
		if err != nil {
			return nil, fmt.Errorf("failed to parse punch-in time: %w", err)
		}
		att.PunchIn = &t
	}
	if req.PunchOut != nil {
		t, err := attendance.ParseDateTime(*req.PunchOut)
		if err != nil {
			return nil, fmt.Errorf("failed to parse punch-out time: %w", err)
		}
		att.PunchOut = &t
	}
	if req.Remarks != nil {
		att.Remarks = *req.Remarks
	}
	att.CalculateWorkingHours()

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return nil, err
	}
	return toResponse(att), nil
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.AttendanceRepository.Delete(ctx, id)
}

func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *toResponse(&records[i]))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID, startDate, endDate string) (*attendance.EmployeeAttendanceResponse, error) {
	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	resp := &attendance.EmployeeAttendanceResponse{
		Count: len(records),
		Data:  make([]attendance.AttendanceResponse, 0, len(records)),
	}
	for i := range records {
		rec := &records[i]
		countStatus(&resp.Stats.StatusCounts, rec.Status)
		resp.Stats.TotalWorkingHours += rec.WorkingHours
		resp.Data = append(resp.Data, *toResponse(rec))
	}
	resp.Stats.TotalWorkingHours = roundHours(resp.Stats.TotalWorkingHours)
	return resp, nil
}

func countStatus(counts *attendance.StatusCounts, status attendance.Status) {
	switch status {
	case attendance.StatusPresent:
		counts.TotalPresent++
	case attendance.StatusAbsent:
		counts.TotalAbsent++
	case attendance.StatusLate:
		counts.TotalLate++
	case attendance.StatusEarly:
		counts.TotalEarly++
	case attendance.StatusHalfDay:
		counts.TotalHalfDay++
	}
}

func (s *AttendanceServiceImpl) RequestCorrection(ctx context.Context, req *attendance.CorrectionRequest) (*attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	att, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	if err != nil {
		return nil, err
	}

	correctedIn, correctedOut, err := parsePunches(req.CorrectedPunchIn, req.CorrectedPunchOut)
	if err != nil {
		return nil, err
	}

	var correctedStatus attendance.Status
	if req.CorrectedStatus != nil {
		correctedStatus = attendance.Status(*req.CorrectedStatus)
	}

	if err := att.ApplyCorrection(correctedIn, correctedOut, correctedStatus, req.Reason, req.EmployeeID, s.workConfig); err != nil {
		return nil, err
	}

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return nil, err
	}
	return toResponse(att), nil
}

func (s *AttendanceServiceImpl) ListPendingCorrections(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListPendingCorrections(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *toResponse(&records[i]))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) ProcessCorrection(ctx context.Context, req *attendance.ProcessCorrectionRequest) (*attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	att, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	approvedBy := "admin"
	if req.ApprovedBy != nil {
		approvedBy = *req.ApprovedBy
	}
	remarks := ""
	if req.Remarks != nil {
		remarks = *req.Remarks
	}

	if err := att.ResolveCorrection(req.Action == "approve", approvedBy, remarks, s.now()); err != nil {
		return nil, err
	}

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return nil, err
	}
	return toResponse(att), nil
}

func (s *AttendanceServiceImpl) Calendar(ctx context.Context, month, year int) (*attendance.CalendarResponse, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	records, err := s.AttendanceRepository.ListByDateRange(ctx, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	resp := &attendance.CalendarResponse{
		Calendar: make(map[string][]attendance.AttendanceResponse),
	}
	for i := range records {
		rec := &records[i]
		day := rec.Date.Format("2006-01-02")
		resp.Calendar[day] = append(resp.Calendar[day], *toResponse(rec))
		countStatus(&resp.Summary.StatusCounts, rec.Status)
		if rec.ApprovalStatus == attendance.ApprovalPending {
			resp.Summary.PendingApprovals++
		}
	}
	return resp, nil
}

// Stats assembles the dashboard counters. The independent queries run in
// parallel.
func (s *AttendanceServiceImpl) Stats(ctx context.Context) (*attendance.DashboardStats, error) {
	today := s.now().Format("2006-01-02")
	stats := &attendance.DashboardStats{}

	var todays []attendance.Attendance

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.EmployeeRepository.Count(gctx)
		if err != nil {
			return err
		}
		stats.TotalEmployees = count
		return nil
	})
	g.Go(func() error {
		records, err := s.AttendanceRepository.List(gctx, attendance.AttendanceFilter{Date: today})
		if err != nil {
			return err
		}
		todays = records
		return nil
	})
	g.Go(func() error {
		count, err := s.AttendanceRepository.CountPendingCorrections(gctx)
		if err != nil {
			return err
		}
		stats.PendingApprovals = count
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range todays {
		switch todays[i].Status {
		case attendance.StatusPresent:
			stats.PresentToday++
		case attendance.StatusAbsent:
			stats.AbsentToday++
		case attendance.StatusLate:
			stats.LateToday++
		case attendance.StatusEarly:
			stats.EarlyToday++
		case attendance.StatusHalfDay:
			stats.HalfDayToday++
		}
	}

	stats.NotMarked = stats.TotalEmployees - int64(len(todays))
	if stats.NotMarked < 0 {
		stats.NotMarked = 0
	}
	return stats, nil
}

func parsePunches(punchIn, punchOut *string) (*time.Time, *time.Time, error) {
	var in, out *time.Time
	if punchIn != nil && *punchIn != "" {
		t, err := attendance.ParseDateTime(*punchIn)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse punch-in time: %w", err)
		}
		in = &t
	}
	if punchOut != nil && *punchOut != "" {
		t, err := attendance.ParseDateTime(*punchOut)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse punch-out time: %w", err)
		}
		out = &t
	}
	return in, out, nil
}
