package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/domain/leave"
	"github.com/hrmslite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
	"github.com/hrmslite/hrms-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db *database.DB
	payroll.SalaryStructureRepository
	payroll.PayrollRepository
	payroll.BonusRepository
	payroll.ConfigRepository
	employee.EmployeeRepository
	attendance.AttendanceRepository
	leave.LeaveRequestRepository
	leave.HolidayRepository
	company payroll.PayslipCompany
	now     func() time.Time
}

func NewPayrollService(
	db *database.DB,
	structureRepo payroll.SalaryStructureRepository,
	payrollRepo payroll.PayrollRepository,
	bonusRepo payroll.BonusRepository,
	configRepo payroll.ConfigRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	holidayRepo leave.HolidayRepository,
	company payroll.PayslipCompany,
) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		db:                        db,
		SalaryStructureRepository: structureRepo,
		PayrollRepository:         payrollRepo,
		BonusRepository:           bonusRepo,
		ConfigRepository:          configRepo,
		EmployeeRepository:        employeeRepo,
		AttendanceRepository:      attendanceRepo,
		LeaveRequestRepository:    leaveRequestRepo,
		HolidayRepository:         holidayRepo,
		company:                   company,
		now:                       time.Now,
	}
}

func structureToResponse(s *payroll.SalaryStructure) *payroll.SalaryStructureResponse {
	return &payroll.SalaryStructureResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		Basic:        s.Basic,
		HRA:          s.HRA,
		Allowances: payroll.AllowancesInput{
			Conveyance: s.Allowances.Conveyance,
			Medical:    s.Allowances.Medical,
			Special:    s.Allowances.Special,
			LTA:        s.Allowances.LTA,
			Food:       s.Allowances.Food,
			Other:      s.Allowances.Other,
		},
		Deductions: payroll.DeductionsInput{
			PF:              s.Deductions.PF,
			ESI:             s.Deductions.ESI,
			ProfessionalTax: s.Deductions.ProfessionalTax,
			TDS:             s.Deductions.TDS,
			LoanRecovery:    s.Deductions.LoanRecovery,
			Other:           s.Deductions.Other,
		},
		GrossSalary:   s.GrossSalary,
		NetSalary:     s.NetSalary,
		CTC:           s.CTC,
		EffectiveFrom: s.EffectiveFrom.Format("2006-01-02"),
		IsActive:      s.IsActive,
	}
}

func payrollToResponse(p *payroll.Payroll) *payroll.PayrollResponse {
	resp := &payroll.PayrollResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		Month:        p.Month,
		Year:         p.Year,
		Earnings: payroll.EarningsResponse{
			Basic:           p.Earnings.Basic,
			HRA:             p.Earnings.HRA,
			Conveyance:      p.Earnings.Conveyance,
			Medical:         p.Earnings.Medical,
			Special:         p.Earnings.Special,
			LTA:             p.Earnings.LTA,
			Food:            p.Earnings.Food,
			OtherAllowances: p.Earnings.OtherAllowances,
			Bonus:           p.Earnings.Bonus,
			Incentive:       p.Earnings.Incentive,
			Overtime:        p.Earnings.Overtime,
			Arrears:         p.Earnings.Arrears,
		},
		Deductions: payroll.DeductionsResponse{
			PF:              p.Deductions.PF,
			ESI:             p.Deductions.ESI,
			ProfessionalTax: p.Deductions.ProfessionalTax,
			TDS:             p.Deductions.TDS,
			LoanRecovery:    p.Deductions.LoanRecovery,
			LOPDeduction:    p.Deductions.LOPDeduction,
			OtherDeductions: p.Deductions.OtherDeductions,
		},
		Attendance: payroll.AttendanceSummaryResponse{
			WorkingDays:   p.Attendance.WorkingDays,
			PresentDays:   p.Attendance.PresentDays,
			AbsentDays:    p.Attendance.AbsentDays,
			LOPDays:       p.Attendance.LOPDays,
			PaidLeaveDays: p.Attendance.PaidLeaveDays,
			Holidays:      p.Attendance.Holidays,
			Weekoffs:      p.Attendance.Weekoffs,
		},
		GrossEarnings:   p.GrossEarnings,
		TotalDeductions: p.TotalDeductions,
		NetPayable:      p.NetPayable,
		Status:          string(p.Status),
		ProcessedBy:     p.ProcessedBy,
		ApprovedBy:      p.ApprovedBy,
		IsLocked:        p.IsLocked,
	}
	if p.ProcessedOn != nil {
		formatted := p.ProcessedOn.Format("2006-01-02 15:04:05")
		resp.ProcessedOn = &formatted
	}
	if p.ApprovedOn != nil {
		formatted := p.ApprovedOn.Format("2006-01-02 15:04:05")
		resp.ApprovedOn = &formatted
	}
	return resp
}

func (s *PayrollServiceImpl) UpsertSalaryStructure(ctx context.Context, req *payroll.UpsertSalaryStructureRequest) (*payroll.SalaryStructureResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	effectiveFrom := s.now()
	if req.EffectiveFrom != nil {
		parsed, err := time.Parse("2006-01-02", *req.EffectiveFrom)
		if err != nil {
			return nil, fmt.Errorf("failed to parse effective-from date: %w", err)
		}
		effectiveFrom = parsed
	}

	structure := &payroll.SalaryStructure{
		EmployeeID: req.EmployeeID,
		Basic:      req.Basic,
		HRA:        req.HRA,
		Allowances: payroll.Allowances{
			Conveyance: req.Allowances.Conveyance,
			Medical:    req.Allowances.Medical,
			Special:    req.Allowances.Special,
			LTA:        req.Allowances.LTA,
			Food:       req.Allowances.Food,
			Other:      req.Allowances.Other,
		},
		Deductions: payroll.StructureDeductions{
			PF:              req.Deductions.PF,
			ESI:             req.Deductions.ESI,
			ProfessionalTax: req.Deductions.ProfessionalTax,
			TDS:             req.Deductions.TDS,
			LoanRecovery:    req.Deductions.LoanRecovery,
			Other:           req.Deductions.Other,
		},
		EffectiveFrom: effectiveFrom,
		IsActive:      true,
	}
	structure.Recalculate()

	_, err := s.SalaryStructureRepository.GetActiveByEmployee(ctx, req.EmployeeID)
	switch {
	case err == nil:
		if err := s.SalaryStructureRepository.Update(ctx, structure); err != nil {
			return nil, err
		}
	case errors.Is(err, payroll.ErrSalaryStructureNotFound):
		if err := s.SalaryStructureRepository.Create(ctx, structure); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return structureToResponse(structure), nil
}

func (s *PayrollServiceImpl) GetSalaryStructure(ctx context.Context, employeeID string) (*payroll.SalaryStructureResponse, error) {
	structure, err := s.SalaryStructureRepository.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return structureToResponse(structure), nil
}

func (s *PayrollServiceImpl) ListSalaryStructures(ctx context.Context) ([]payroll.SalaryStructureResponse, error) {
	structures, err := s.SalaryStructureRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.SalaryStructureResponse, 0, len(structures))
	for i := range structures {
		responses = append(responses, *structureToResponse(&structures[i]))
	}
	return responses, nil
}

// ProcessMonth runs the payroll batch for every active employee. One
// employee's failure is recorded in the errors list and never aborts the
// rest of the batch.
func (s *PayrollServiceImpl) ProcessMonth(ctx context.Context, req *payroll.ProcessMonthRequest) (*payroll.ProcessMonthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.EmployeeRepository.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	processedBy := req.ProcessedBy
	if processedBy == "" {
		processedBy = "System"
	}

	resp := &payroll.ProcessMonthResponse{
		Processed: make([]payroll.ProcessedEntry, 0, len(employees)),
		Errors:    make([]payroll.ProcessErrorEntry, 0),
	}

	for i := range employees {
		emp := &employees[i]
		entry, err := s.processEmployee(ctx, emp, req.Month, req.Year, processedBy)
		if err != nil {
			resp.Errors = append(resp.Errors, payroll.ProcessErrorEntry{
				EmployeeID: emp.EmployeeID,
				Error:      err.Error(),
			})
			continue
		}
		resp.Processed = append(resp.Processed, *entry)
	}
	return resp, nil
}

func (s *PayrollServiceImpl) processEmployee(ctx context.Context, emp *employee.Employee, month, year int, processedBy string) (*payroll.ProcessedEntry, error) {
	existing, err := s.PayrollRepository.GetByEmployeeAndMonth(ctx, emp.EmployeeID, month, year)
	if err != nil && !errors.Is(err, payroll.ErrPayrollNotFound) {
		return nil, err
	}
	if existing != nil && existing.IsLocked {
		return nil, payroll.ErrPayrollLocked
	}

	structure, err := s.SalaryStructureRepository.GetActiveByEmployee(ctx, emp.EmployeeID)
	if err != nil {
		return nil, err
	}

	start, end, totalDays := payroll.MonthWindow(month, year)
	startStr := start.Format("2006-01-02")
	endStr := end.Format("2006-01-02")

	presentDays, err := s.AttendanceRepository.CountByStatusAndRange(ctx, emp.EmployeeID, startStr, endStr,
		[]attendance.Status{attendance.StatusPresent, attendance.StatusLate})
	if err != nil {
		return nil, err
	}
	halfDays, err := s.AttendanceRepository.CountByStatusAndRange(ctx, emp.EmployeeID, startStr, endStr,
		[]attendance.Status{attendance.StatusHalfDay})
	if err != nil {
		return nil, err
	}
	absentDays, err := s.AttendanceRepository.CountByStatusAndRange(ctx, emp.EmployeeID, startStr, endStr,
		[]attendance.Status{attendance.StatusAbsent})
	if err != nil {
		return nil, err
	}

	paidLeaveDays, err := s.LeaveRequestRepository.ApprovedPaidDays(ctx, emp.EmployeeID, startStr, endStr)
	if err != nil {
		return nil, err
	}
	lopDays, err := s.LeaveRequestRepository.ApprovedUnpaidDays(ctx, emp.EmployeeID, startStr, endStr)
	if err != nil {
		return nil, err
	}

	holidays, err := s.HolidayRepository.ListInRange(ctx, startStr, endStr)
	if err != nil {
		return nil, err
	}

	weekoffs := payroll.CountSundays(start, end)
	workingDays := totalDays - weekoffs - len(holidays)
	effectivePresentDays := payroll.EffectivePresentDays(presentDays, halfDays, paidLeaveDays)

	perDay, err := payroll.PerDaySalary(structure.GrossSalary, workingDays)
	if err != nil {
		return nil, err
	}
	lopDeduction := payroll.LOPDeduction(lopDays, perDay)

	bonuses, err := s.BonusRepository.ListPayable(ctx, emp.EmployeeID, month, year)
	if err != nil {
		return nil, err
	}
	bonusAmount := decimal.Zero
	bonusIDs := make([]string, 0, len(bonuses))
	for i := range bonuses {
		bonusAmount = bonusAmount.Add(bonuses[i].Amount)
		bonusIDs = append(bonusIDs, bonuses[i].ID)
	}

	now := s.now()
	run := &payroll.Payroll{
		EmployeeID: emp.EmployeeID,
		Month:      month,
		Year:       year,
		Earnings: payroll.Earnings{
			Basic:           structure.Basic,
			HRA:             structure.HRA,
			Conveyance:      structure.Allowances.Conveyance,
			Medical:         structure.Allowances.Medical,
			Special:         structure.Allowances.Special,
			LTA:             structure.Allowances.LTA,
			Food:            structure.Allowances.Food,
			OtherAllowances: structure.Allowances.Other,
			Bonus:           bonusAmount,
		},
		Deductions: payroll.Deductions{
			PF:              structure.Deductions.PF,
			ESI:             structure.Deductions.ESI,
			ProfessionalTax: structure.Deductions.ProfessionalTax,
			TDS:             structure.Deductions.TDS,
			LoanRecovery:    structure.Deductions.LoanRecovery,
			LOPDeduction:    lopDeduction,
			OtherDeductions: structure.Deductions.Other,
		},
		Attendance: payroll.AttendanceSummary{
			WorkingDays:   workingDays,
			PresentDays:   effectivePresentDays,
			AbsentDays:    absentDays,
			LOPDays:       lopDays,
			PaidLeaveDays: paidLeaveDays,
			Holidays:      len(holidays),
			Weekoffs:      weekoffs,
		},
		Status:      payroll.StatusProcessed,
		ProcessedBy: processedBy,
		ProcessedOn: &now,
		PaymentMode: "Bank Transfer",
	}
	run.ComputeTotals()

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if existing != nil {
			run.ID = existing.ID
			if err := s.PayrollRepository.Update(txCtx, run); err != nil {
				return err
			}
		} else {
			if err := s.PayrollRepository.Create(txCtx, run); err != nil {
				return err
			}
		}
		return s.BonusRepository.MarkIncluded(txCtx, bonusIDs)
	})
	if err != nil {
		return nil, err
	}

	return &payroll.ProcessedEntry{
		EmployeeID: emp.EmployeeID,
		Name:       emp.FullName,
		NetPayable: run.NetPayable,
	}, nil
}

func (s *PayrollServiceImpl) LockMonth(ctx context.Context, req *payroll.LockMonthRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	return s.PayrollRepository.LockMonth(ctx, req.Month, req.Year)
}

func (s *PayrollServiceImpl) Approve(ctx context.Context, id, approvedBy string) (*payroll.PayrollResponse, error) {
	run, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if run.IsLocked {
		return nil, payroll.ErrPayrollLocked
	}
	if run.Status != payroll.StatusProcessed {
		return nil, payroll.ErrPayrollNotProcessed
	}

	now := s.now()
	run.Status = payroll.StatusApproved
	run.ApprovedBy = approvedBy
	run.ApprovedOn = &now

	if err := s.PayrollRepository.Update(ctx, run); err != nil {
		return nil, err
	}
	return payrollToResponse(run), nil
}

func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollResponse, error) {
	payrolls, err := s.PayrollRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(payrolls))
	for i := range payrolls {
		responses = append(responses, *payrollToResponse(&payrolls[i]))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) Payslip(ctx context.Context, employeeID string, month, year int) (*payroll.PayslipResponse, error) {
	if month == 0 || year == 0 {
		n := s.now()
		month, year = int(n.Month()), n.Year()
	}

	run, err := s.PayrollRepository.GetByEmployeeAndMonth(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	payrollResp := payrollToResponse(run)
	payrollResp.EmployeeName = emp.FullName

	return &payroll.PayslipResponse{
		Payroll: *payrollResp,
		Employee: payroll.PayslipEmployee{
			EmployeeID: emp.EmployeeID,
			FullName:   emp.FullName,
			Email:      emp.Email,
			Department: emp.Department,
		},
		Company: s.company,
	}, nil
}

func (s *PayrollServiceImpl) CreateBonus(ctx context.Context, req *payroll.CreateBonusRequest) (*payroll.BonusResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	bonus := &payroll.Bonus{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		Amount:     req.Amount,
		Month:      req.Month,
		Year:       req.Year,
		Reason:     req.Reason,
		Status:     payroll.BonusPending,
	}
	if err := s.BonusRepository.Create(ctx, bonus); err != nil {
		return nil, err
	}
	return bonusToResponse(bonus), nil
}

func bonusToResponse(b *payroll.Bonus) *payroll.BonusResponse {
	return &payroll.BonusResponse{
		ID:                b.ID,
		EmployeeID:        b.EmployeeID,
		EmployeeName:      b.EmployeeName,
		Type:              b.Type,
		Amount:            b.Amount,
		Month:             b.Month,
		Year:              b.Year,
		Reason:            b.Reason,
		Status:            string(b.Status),
		ApprovedBy:        b.ApprovedBy,
		IncludedInPayroll: b.IncludedInPayroll,
	}
}

func (s *PayrollServiceImpl) ApproveBonus(ctx context.Context, id, approvedBy string) (*payroll.BonusResponse, error) {
	bonus, err := s.BonusRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bonus.Status != payroll.BonusPending {
		return nil, payroll.ErrBonusAlreadyProcessed
	}

	now := s.now()
	bonus.Status = payroll.BonusApproved
	bonus.ApprovedBy = approvedBy
	bonus.ApprovedOn = &now

	if err := s.BonusRepository.Update(ctx, bonus); err != nil {
		return nil, err
	}
	return bonusToResponse(bonus), nil
}

func (s *PayrollServiceImpl) ListBonuses(ctx context.Context, employeeID string, month, year int) ([]payroll.BonusResponse, error) {
	bonuses, err := s.BonusRepository.List(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.BonusResponse, 0, len(bonuses))
	for i := range bonuses {
		responses = append(responses, *bonusToResponse(&bonuses[i]))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) GetConfig(ctx context.Context) (*payroll.ConfigResponse, error) {
	cfg, err := s.ConfigRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, payroll.ErrConfigNotFound) {
			defaults := payroll.DefaultConfig()
			return configToResponse(&defaults), nil
		}
		return nil, err
	}
	return configToResponse(cfg), nil
}

func configToResponse(c *payroll.Config) *payroll.ConfigResponse {
	return &payroll.ConfigResponse{
		PFPercentage:         c.PFPercentage,
		ESIPercentage:        c.ESIPercentage,
		ESIThreshold:         c.ESIThreshold,
		ProfessionalTaxSlabs: c.ProfessionalTaxSlabs,
		PayrollProcessingDay: c.PayrollProcessingDay,
		PaymentDay:           c.PaymentDay,
		FinancialYearStart:   c.FinancialYearStart,
	}
}

func (s *PayrollServiceImpl) UpdateConfig(ctx context.Context, req *payroll.UpdateConfigRequest) (*payroll.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cfg, err := s.ConfigRepository.Get(ctx)
	if err != nil {
		if !errors.Is(err, payroll.ErrConfigNotFound) {
			return nil, err
		}
		defaults := payroll.DefaultConfig()
		cfg = &defaults
	}

	if req.PFPercentage != nil {
		cfg.PFPercentage = *req.PFPercentage
	}
	if req.ESIPercentage != nil {
		cfg.ESIPercentage = *req.ESIPercentage
	}
	if req.ESIThreshold != nil {
		cfg.ESIThreshold = *req.ESIThreshold
	}
	if req.ProfessionalTaxSlabs != nil {
		cfg.ProfessionalTaxSlabs = req.ProfessionalTaxSlabs
	}
	if req.PayrollProcessingDay != nil {
		cfg.PayrollProcessingDay = *req.PayrollProcessingDay
	}
	if req.PaymentDay != nil {
		cfg.PaymentDay = *req.PaymentDay
	}
	if req.FinancialYearStart != nil {
		cfg.FinancialYearStart = *req.FinancialYearStart
	}

	if err := s.ConfigRepository.Upsert(ctx, cfg); err != nil {
		return nil, err
	}
	return configToResponse(cfg), nil
}

func (s *PayrollServiceImpl) Stats(ctx context.Context, month, year int) (*payroll.PayrollStats, error) {
	if month == 0 || year == 0 {
		now := s.now()
		month = int(now.Month())
		year = now.Year()
	}
	return s.PayrollRepository.Stats(ctx, month, year)
}
