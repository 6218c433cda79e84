package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/domain/leave"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
	"github.com/hrmslite/hrms-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveTypeRepository
	leave.LeaveBalanceRepository
	leave.LeaveRequestRepository
	leave.HolidayRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewLeaveService(
	db *database.DB,
	typeRepo leave.LeaveTypeRepository,
	balanceRepo leave.LeaveBalanceRepository,
	requestRepo leave.LeaveRequestRepository,
	holidayRepo leave.HolidayRepository,
	employeeRepo employee.EmployeeRepository,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveTypeRepository:    typeRepo,
		LeaveBalanceRepository: balanceRepo,
		LeaveRequestRepository: requestRepo,
		HolidayRepository:      holidayRepo,
		EmployeeRepository:     employeeRepo,
		now:                    time.Now,
	}
}

func typeToResponse(lt *leave.LeaveType) *leave.LeaveTypeResponse {
	return &leave.LeaveTypeResponse{
		ID:              lt.ID,
		Name:            lt.Name,
		Code:            lt.Code,
		AnnualQuota:     lt.AnnualQuota,
		IsPaid:          lt.IsPaid,
		CarryForward:    lt.CarryForward,
		MaxCarryForward: lt.MaxCarryForward,
		IsActive:        lt.IsActive,
	}
}

func requestToResponse(req *leave.LeaveRequest) *leave.LeaveRequestResponse {
	resp := &leave.LeaveRequestResponse{
		ID:            req.ID,
		EmployeeID:    req.EmployeeID,
		EmployeeName:  req.EmployeeName,
		LeaveTypeID:   req.LeaveTypeID,
		LeaveTypeName: req.LeaveTypeName,
		LeaveTypeCode: req.LeaveTypeCode,
		IsPaid:        req.IsPaid,
		StartDate:     req.StartDate.Format("2006-01-02"),
		EndDate:       req.EndDate.Format("2006-01-02"),
		IsHalfDay:     req.IsHalfDay,
		Days:          req.Days,
		Reason:        req.Reason,
		Status:        string(req.Status),
		ActionBy:      req.ActionBy,
		ActionRemarks: req.ActionRemarks,
		CreatedAt:     req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if req.ActionDate != nil {
		formatted := req.ActionDate.Format("2006-01-02 15:04:05")
		resp.ActionDate = &formatted
	}
	return resp
}

func (s *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req *leave.CreateLeaveTypeRequest) (*leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	isPaid := true
	if req.IsPaid != nil {
		isPaid = *req.IsPaid
	}
	lt := &leave.LeaveType{
		Name:            req.Name,
		Code:            req.Code,
		AnnualQuota:     req.AnnualQuota,
		IsPaid:          isPaid,
		CarryForward:    req.CarryForward,
		MaxCarryForward: req.MaxCarryForward,
		IsActive:        true,
	}
	if err := s.LeaveTypeRepository.Create(ctx, lt); err != nil {
		return nil, err
	}
	return typeToResponse(lt), nil
}

func (s *LeaveServiceImpl) ListLeaveTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := s.LeaveTypeRepository.List(ctx, false)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for i := range types {
		responses = append(responses, *typeToResponse(&types[i]))
	}
	return responses, nil
}

// EnsureDefaultLeaveTypes seeds the standard catalog on first boot.
func (s *LeaveServiceImpl) EnsureDefaultLeaveTypes(ctx context.Context) error {
	count, err := s.LeaveTypeRepository.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, lt := range leave.DefaultLeaveTypes() {
		lt := lt
		if err := s.LeaveTypeRepository.Create(ctx, &lt); err != nil {
			if errors.Is(err, leave.ErrLeaveTypeCodeExists) {
				continue
			}
			return fmt.Errorf("failed to seed leave type %s: %w", lt.Code, err)
		}
	}
	return nil
}

// ensureBalance lazily creates the year's balance row from the type's quota.
func (s *LeaveServiceImpl) ensureBalance(ctx context.Context, employeeID string, lt *leave.LeaveType, year int) (*leave.LeaveBalance, error) {
	balance, err := s.LeaveBalanceRepository.GetByEmployeeAndType(ctx, employeeID, lt.ID, year)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, leave.ErrBalanceNotFound) {
		return nil, err
	}

	fresh := &leave.LeaveBalance{
		EmployeeID:  employeeID,
		LeaveTypeID: lt.ID,
		Year:        year,
		Allocated:   lt.AnnualQuota,
	}
	if err := s.LeaveBalanceRepository.Create(ctx, fresh); err != nil {
		return nil, err
	}
	return s.LeaveBalanceRepository.GetByEmployeeAndType(ctx, employeeID, lt.ID, year)
}

func (s *LeaveServiceImpl) Apply(ctx context.Context, req *leave.ApplyLeaveRequest) (*leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	lt, err := s.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse end date: %w", err)
	}
	if endDate.Before(startDate) {
		return nil, leave.ErrInvalidDateRange
	}

	overlapping, err := s.LeaveRequestRepository.HasOverlapping(ctx, req.EmployeeID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if overlapping {
		return nil, leave.ErrOverlappingRequest
	}

	days := leave.InclusiveDays(startDate, endDate, req.IsHalfDay)
	year := startDate.Year()

	request := &leave.LeaveRequest{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   startDate,
		EndDate:     endDate,
		IsHalfDay:   req.IsHalfDay,
		Days:        days,
		Reason:      req.Reason,
		Status:      leave.StatusPending,
	}

	// Unpaid types have no quota to draw from, so no balance movement.
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if lt.IsPaid {
			if _, err := s.ensureBalance(txCtx, req.EmployeeID, lt, year); err != nil {
				return err
			}
			if err := s.LeaveBalanceRepository.ApplyPending(txCtx, req.EmployeeID, lt.ID, year, days); err != nil {
				return err
			}
		}
		return s.LeaveRequestRepository.Create(txCtx, request)
	})
	if err != nil {
		return nil, err
	}

	return s.getRequestResponse(ctx, request.ID)
}

func (s *LeaveServiceImpl) getRequestResponse(ctx context.Context, id string) (*leave.LeaveRequestResponse, error) {
	req, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return requestToResponse(req), nil
}

func (s *LeaveServiceImpl) Process(ctx context.Context, req *leave.ProcessLeaveRequest) (*leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if request.Status != leave.StatusPending {
		return nil, leave.ErrRequestAlreadyProcessed
	}

	now := s.now()
	request.ActionDate = &now
	if req.ActionBy != nil {
		request.ActionBy = *req.ActionBy
	} else {
		request.ActionBy = "admin"
	}
	if req.Remarks != nil {
		request.ActionRemarks = *req.Remarks
	}

	year := request.StartDate.Year()

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if req.Action == "approve" {
			request.Status = leave.StatusApproved
			if request.IsPaid {
				if err := s.LeaveBalanceRepository.ApprovePending(txCtx, request.EmployeeID, request.LeaveTypeID, year, request.Days); err != nil {
					return err
				}
			}
		} else {
			request.Status = leave.StatusRejected
			if request.IsPaid {
				if err := s.LeaveBalanceRepository.ReleasePending(txCtx, request.EmployeeID, request.LeaveTypeID, year, request.Days); err != nil {
					return err
				}
			}
		}
		return s.LeaveRequestRepository.Update(txCtx, request)
	})
	if err != nil {
		return nil, err
	}

	return requestToResponse(request), nil
}

// Cancel releases the request's balance movement: pending days for a pending
// request, used days for an approved one.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, id string) (*leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != leave.StatusPending && request.Status != leave.StatusApproved {
		return nil, leave.ErrRequestNotCancellable
	}

	wasPending := request.Status == leave.StatusPending
	year := request.StartDate.Year()
	now := s.now()

	request.Status = leave.StatusCancelled
	request.ActionDate = &now

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if request.IsPaid {
			if wasPending {
				if err := s.LeaveBalanceRepository.ReleasePending(txCtx, request.EmployeeID, request.LeaveTypeID, year, request.Days); err != nil {
					return err
				}
			} else {
				if err := s.LeaveBalanceRepository.ReleaseUsed(txCtx, request.EmployeeID, request.LeaveTypeID, year, request.Days); err != nil {
					return err
				}
			}
		}
		return s.LeaveRequestRepository.Update(txCtx, request)
	})
	if err != nil {
		return nil, err
	}

	return requestToResponse(request), nil
}

func (s *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, *requestToResponse(&requests[i]))
	}
	return responses, nil
}

// Balances returns the employee's balance per active leave type, creating
// missing balance rows from the annual quota.
func (s *LeaveServiceImpl) Balances(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalanceResponse, error) {
	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID); err != nil {
		return nil, err
	}
	if year == 0 {
		year = s.now().Year()
	}

	types, err := s.LeaveTypeRepository.List(ctx, true)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveBalanceResponse, 0, len(types))
	for i := range types {
		lt := &types[i]
		balance, err := s.ensureBalance(ctx, employeeID, lt, year)
		if err != nil {
			return nil, err
		}
		responses = append(responses, leave.LeaveBalanceResponse{
			ID:            balance.ID,
			EmployeeID:    balance.EmployeeID,
			LeaveTypeID:   balance.LeaveTypeID,
			LeaveTypeName: balance.LeaveTypeName,
			LeaveTypeCode: balance.LeaveTypeCode,
			IsPaid:        balance.IsPaid,
			Year:          balance.Year,
			Allocated:     balance.Allocated,
			Used:          balance.Used,
			Pending:       balance.Pending,
			CarryForward:  balance.CarryForward,
			Available:     balance.Available(),
		})
	}
	return responses, nil
}

func (s *LeaveServiceImpl) CreateHoliday(ctx context.Context, req *leave.CreateHolidayRequest) (*leave.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse holiday date: %w", err)
	}

	holidayType := req.Type
	if holidayType == "" {
		holidayType = "Company"
	}

	h := &leave.Holiday{
		Name:        req.Name,
		Date:        date,
		Type:        holidayType,
		Description: req.Description,
		IsOptional:  req.IsOptional,
		IsActive:    true,
	}
	if err := s.HolidayRepository.Create(ctx, h); err != nil {
		return nil, err
	}
	return holidayToResponse(h), nil
}

func (s *LeaveServiceImpl) UpdateHoliday(ctx context.Context, req *leave.UpdateHolidayRequest) (*leave.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	h, err := s.HolidayRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse holiday date: %w", err)
		}
		h.Date = date
	}
	if req.Type != nil {
		h.Type = *req.Type
	}
	if req.Description != nil {
		h.Description = *req.Description
	}
	if req.IsOptional != nil {
		h.IsOptional = *req.IsOptional
	}
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}

	if err := s.HolidayRepository.Update(ctx, h); err != nil {
		return nil, err
	}
	return holidayToResponse(h), nil
}

// InitializeHolidays seeds the default national holiday calendar for the
// year, skipping dates that already have a holiday.
func (s *LeaveServiceImpl) InitializeHolidays(ctx context.Context, year int) error {
	if year == 0 {
		year = s.now().Year()
	}

	for _, h := range leave.DefaultHolidays(year) {
		_, err := s.HolidayRepository.GetByDate(ctx, h.Date.Format("2006-01-02"))
		if err == nil {
			continue
		}
		if !errors.Is(err, leave.ErrHolidayNotFound) {
			return err
		}

		seed := h
		if err := s.HolidayRepository.Create(ctx, &seed); err != nil {
			return err
		}
	}
	return nil
}

func holidayToResponse(h *leave.Holiday) *leave.HolidayResponse {
	return &leave.HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		Type:        h.Type,
		Description: h.Description,
		IsOptional:  h.IsOptional,
		IsActive:    h.IsActive,
	}
}

func (s *LeaveServiceImpl) ListHolidays(ctx context.Context, year int) ([]leave.HolidayResponse, error) {
	if year == 0 {
		year = s.now().Year()
	}
	holidays, err := s.HolidayRepository.List(ctx, year)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.HolidayResponse, 0, len(holidays))
	for i := range holidays {
		responses = append(responses, *holidayToResponse(&holidays[i]))
	}
	return responses, nil
}

func (s *LeaveServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}

func (s *LeaveServiceImpl) Stats(ctx context.Context) (*leave.LeaveStats, error) {
	now := s.now()
	today := now.Format("2006-01-02")
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	stats := &leave.LeaveStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.LeaveRequestRepository.CountByStatus(gctx, leave.StatusPending)
		if err != nil {
			return err
		}
		stats.PendingRequests = count
		return nil
	})
	g.Go(func() error {
		count, err := s.LeaveRequestRepository.CountApprovedInRange(gctx, monthStart.Format("2006-01-02"), monthEnd.Format("2006-01-02"))
		if err != nil {
			return err
		}
		stats.ApprovedThisMonth = count
		return nil
	})
	g.Go(func() error {
		count, err := s.LeaveRequestRepository.CountOnLeave(gctx, today)
		if err != nil {
			return err
		}
		stats.OnLeaveToday = count
		return nil
	})
	g.Go(func() error {
		holidays, err := s.HolidayRepository.ListUpcoming(gctx, today, 5)
		if err != nil {
			return err
		}
		for i := range holidays {
			stats.UpcomingHolidays = append(stats.UpcomingHolidays, *holidayToResponse(&holidays[i]))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
