package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/domain/leave"
	"github.com/hrmslite/hrms-backend-go/internal/domain/payroll"
)

type stubEmployeeRepo struct {
	active []employee.Employee
}

func (r *stubEmployeeRepo) Create(ctx context.Context, emp *employee.Employee) error { return nil }
func (r *stubEmployeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	for i := range r.active {
		if r.active[i].EmployeeID == employeeID {
			return &r.active[i], nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}
func (r *stubEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return r.active, nil
}
func (r *stubEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return r.active, nil
}
func (r *stubEmployeeRepo) Update(ctx context.Context, emp *employee.Employee) error { return nil }
func (r *stubEmployeeRepo) Delete(ctx context.Context, employeeID string) error      { return nil }
func (r *stubEmployeeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.active)), nil
}

type stubStructureRepo struct {
	byEmployee map[string]*payroll.SalaryStructure
}

func (r *stubStructureRepo) Create(ctx context.Context, s *payroll.SalaryStructure) error {
	r.byEmployee[s.EmployeeID] = s
	return nil
}
func (r *stubStructureRepo) GetActiveByEmployee(ctx context.Context, employeeID string) (*payroll.SalaryStructure, error) {
	s, ok := r.byEmployee[employeeID]
	if !ok {
		return nil, payroll.ErrSalaryStructureNotFound
	}
	return s, nil
}
func (r *stubStructureRepo) List(ctx context.Context) ([]payroll.SalaryStructure, error) {
	return nil, nil
}
func (r *stubStructureRepo) Update(ctx context.Context, s *payroll.SalaryStructure) error {
	r.byEmployee[s.EmployeeID] = s
	return nil
}

type stubPayrollRepo struct {
	existing map[string]*payroll.Payroll // employeeID
	locked   int64
	created  *payroll.Payroll
	updated  *payroll.Payroll
}

func (r *stubPayrollRepo) Create(ctx context.Context, p *payroll.Payroll) error {
	r.created = p
	return nil
}
func (r *stubPayrollRepo) GetByID(ctx context.Context, id string) (*payroll.Payroll, error) {
	for _, p := range r.existing {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, payroll.ErrPayrollNotFound
}
func (r *stubPayrollRepo) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) (*payroll.Payroll, error) {
	p, ok := r.existing[employeeID]
	if !ok {
		return nil, payroll.ErrPayrollNotFound
	}
	return p, nil
}
func (r *stubPayrollRepo) Update(ctx context.Context, p *payroll.Payroll) error {
	r.updated = p
	return nil
}
func (r *stubPayrollRepo) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, error) {
	return nil, nil
}
func (r *stubPayrollRepo) LockMonth(ctx context.Context, month, year int) (int64, error) {
	return r.locked, nil
}
func (r *stubPayrollRepo) Stats(ctx context.Context, month, year int) (*payroll.PayrollStats, error) {
	return &payroll.PayrollStats{Month: month, Year: year}, nil
}

type stubBonusRepo struct {
	payable   []payroll.Bonus
	markedIDs []string
}

func (r *stubBonusRepo) Create(ctx context.Context, b *payroll.Bonus) error { return nil }
func (r *stubBonusRepo) GetByID(ctx context.Context, id string) (*payroll.Bonus, error) {
	return nil, payroll.ErrBonusNotFound
}
func (r *stubBonusRepo) List(ctx context.Context, employeeID string, month, year int) ([]payroll.Bonus, error) {
	return nil, nil
}
func (r *stubBonusRepo) ListPayable(ctx context.Context, employeeID string, month, year int) ([]payroll.Bonus, error) {
	return r.payable, nil
}
func (r *stubBonusRepo) Update(ctx context.Context, b *payroll.Bonus) error { return nil }
func (r *stubBonusRepo) MarkIncluded(ctx context.Context, ids []string) error {
	r.markedIDs = append(r.markedIDs, ids...)
	return nil
}

type stubConfigRepo struct {
	cfg *payroll.Config
}

func (r *stubConfigRepo) Get(ctx context.Context) (*payroll.Config, error) {
	if r.cfg == nil {
		return nil, payroll.ErrConfigNotFound
	}
	return r.cfg, nil
}
func (r *stubConfigRepo) Upsert(ctx context.Context, c *payroll.Config) error {
	r.cfg = c
	return nil
}

type stubLeaveRequestRepo struct {
	paidDays   float64
	unpaidDays float64
}

func (r *stubLeaveRequestRepo) Create(ctx context.Context, req *leave.LeaveRequest) error {
	return nil
}
func (r *stubLeaveRequestRepo) GetByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	return nil, leave.ErrRequestNotFound
}
func (r *stubLeaveRequestRepo) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	return nil, nil
}
func (r *stubLeaveRequestRepo) Update(ctx context.Context, req *leave.LeaveRequest) error {
	return nil
}
func (r *stubLeaveRequestRepo) HasOverlapping(ctx context.Context, employeeID, startDate, endDate string) (bool, error) {
	return false, nil
}
func (r *stubLeaveRequestRepo) CountByStatus(ctx context.Context, status leave.RequestStatus) (int64, error) {
	return 0, nil
}
func (r *stubLeaveRequestRepo) CountApprovedInRange(ctx context.Context, startDate, endDate string) (int64, error) {
	return 0, nil
}
func (r *stubLeaveRequestRepo) CountOnLeave(ctx context.Context, date string) (int64, error) {
	return 0, nil
}
func (r *stubLeaveRequestRepo) ApprovedPaidDays(ctx context.Context, employeeID, startDate, endDate string) (float64, error) {
	return r.paidDays, nil
}
func (r *stubLeaveRequestRepo) ApprovedUnpaidDays(ctx context.Context, employeeID, startDate, endDate string) (float64, error) {
	return r.unpaidDays, nil
}

type stubAttendanceRepo struct {
	present  int
	halfDays int
	absent   int
}

func (r *stubAttendanceRepo) Create(ctx context.Context, att *attendance.Attendance) error {
	return nil
}
func (r *stubAttendanceRepo) GetByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	return nil, attendance.ErrAttendanceNotFound
}
func (r *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*attendance.Attendance, error) {
	return nil, attendance.ErrAttendanceNotFound
}
func (r *stubAttendanceRepo) Update(ctx context.Context, att *attendance.Attendance) error {
	return nil
}
func (r *stubAttendanceRepo) Delete(ctx context.Context, id string) error { return nil }
func (r *stubAttendanceRepo) DeleteByEmployee(ctx context.Context, employeeID string) error {
	return nil
}
func (r *stubAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	return nil, nil
}
func (r *stubAttendanceRepo) ListByEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]attendance.Attendance, error) {
	return nil, nil
}
func (r *stubAttendanceRepo) ListByDateRange(ctx context.Context, startDate, endDate string) ([]attendance.Attendance, error) {
	return nil, nil
}
func (r *stubAttendanceRepo) ListPendingCorrections(ctx context.Context) ([]attendance.Attendance, error) {
	return nil, nil
}
func (r *stubAttendanceRepo) CountPendingCorrections(ctx context.Context) (int64, error) {
	return 0, nil
}
func (r *stubAttendanceRepo) CountByStatusAndRange(ctx context.Context, employeeID, startDate, endDate string, statuses []attendance.Status) (int, error) {
	if len(statuses) == 0 {
		return 0, nil
	}
	switch statuses[0] {
	case attendance.StatusPresent, attendance.StatusLate:
		return r.present, nil
	case attendance.StatusHalfDay:
		return r.halfDays, nil
	case attendance.StatusAbsent:
		return r.absent, nil
	}
	return 0, nil
}

type stubHolidayRepo struct {
	inRange []leave.Holiday
}

func (r *stubHolidayRepo) Create(ctx context.Context, h *leave.Holiday) error { return nil }
func (r *stubHolidayRepo) GetByID(ctx context.Context, id string) (*leave.Holiday, error) {
	return nil, leave.ErrHolidayNotFound
}
func (r *stubHolidayRepo) GetByDate(ctx context.Context, date string) (*leave.Holiday, error) {
	return nil, leave.ErrHolidayNotFound
}
func (r *stubHolidayRepo) List(ctx context.Context, year int) ([]leave.Holiday, error) {
	return nil, nil
}
func (r *stubHolidayRepo) ListInRange(ctx context.Context, startDate, endDate string) ([]leave.Holiday, error) {
	return r.inRange, nil
}
func (r *stubHolidayRepo) Update(ctx context.Context, h *leave.Holiday) error { return nil }
func (r *stubHolidayRepo) Delete(ctx context.Context, id string) error        { return nil }
func (r *stubHolidayRepo) ListUpcoming(ctx context.Context, from string, limit int) ([]leave.Holiday, error) {
	return nil, nil
}

func newTestService(empRepo *stubEmployeeRepo, structRepo *stubStructureRepo, payRepo *stubPayrollRepo, cfgRepo *stubConfigRepo) *PayrollServiceImpl {
	svc := NewPayrollService(
		nil,
		structRepo,
		payRepo,
		&stubBonusRepo{},
		cfgRepo,
		empRepo,
		&stubAttendanceRepo{},
		&stubLeaveRequestRepo{},
		&stubHolidayRepo{},
		payroll.PayslipCompany{Name: "HRMS Lite"},
	)
	svc.now = func() time.Time { return time.Date(2025, 6, 28, 6, 0, 0, 0, time.UTC) }
	return svc
}

func TestProcessMonthSkipsLockedPayrolls(t *testing.T) {
	ctx := context.Background()
	empRepo := &stubEmployeeRepo{active: []employee.Employee{
		{EmployeeID: "EMP001", FullName: "Asha Rao", Status: "Active"},
	}}
	structRepo := &stubStructureRepo{byEmployee: map[string]*payroll.SalaryStructure{
		"EMP001": {EmployeeID: "EMP001", GrossSalary: decimal.NewFromInt(50000)},
	}}
	payRepo := &stubPayrollRepo{existing: map[string]*payroll.Payroll{
		"EMP001": {ID: "pr-1", EmployeeID: "EMP001", IsLocked: true, Status: payroll.StatusLocked},
	}}
	svc := newTestService(empRepo, structRepo, payRepo, &stubConfigRepo{})

	resp, err := svc.ProcessMonth(ctx, &payroll.ProcessMonthRequest{Month: 6, Year: 2025})
	require.NoError(t, err)

	assert.Empty(t, resp.Processed)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "EMP001", resp.Errors[0].EmployeeID)
	assert.Equal(t, payroll.ErrPayrollLocked.Error(), resp.Errors[0].Error)
}

func TestProcessMonthIsolatesFailures(t *testing.T) {
	ctx := context.Background()
	empRepo := &stubEmployeeRepo{active: []employee.Employee{
		{EmployeeID: "EMP001", FullName: "Asha Rao", Status: "Active"},
		{EmployeeID: "EMP002", FullName: "Vikram Shah", Status: "Active"},
	}}
	// Neither employee has a salary structure; both must fail without
	// aborting the batch.
	structRepo := &stubStructureRepo{byEmployee: map[string]*payroll.SalaryStructure{}}
	payRepo := &stubPayrollRepo{existing: map[string]*payroll.Payroll{}}
	svc := newTestService(empRepo, structRepo, payRepo, &stubConfigRepo{})

	resp, err := svc.ProcessMonth(ctx, &payroll.ProcessMonthRequest{Month: 6, Year: 2025})
	require.NoError(t, err)

	assert.Empty(t, resp.Processed)
	require.Len(t, resp.Errors, 2)
	for _, e := range resp.Errors {
		assert.Equal(t, payroll.ErrSalaryStructureNotFound.Error(), e.Error)
	}
}

func TestProcessMonthValidatesRequest(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&stubEmployeeRepo{}, &stubStructureRepo{byEmployee: map[string]*payroll.SalaryStructure{}}, &stubPayrollRepo{}, &stubConfigRepo{})

	_, err := svc.ProcessMonth(ctx, &payroll.ProcessMonthRequest{Month: 13, Year: 2025})
	assert.Error(t, err)
}

func TestProcessMonthOverwritesUnlockedRun(t *testing.T) {
	ctx := context.Background()
	empRepo := &stubEmployeeRepo{active: []employee.Employee{
		{EmployeeID: "EMP001", FullName: "Asha Rao", Status: "Active"},
	}}
	structure := &payroll.SalaryStructure{
		EmployeeID: "EMP001",
		Basic:      decimal.NewFromInt(40000),
		HRA:        decimal.NewFromInt(20000),
		Allowances: payroll.Allowances{Other: decimal.NewFromInt(15000)},
		Deductions: payroll.StructureDeductions{PF: decimal.NewFromInt(1800)},
	}
	structure.Recalculate()
	structRepo := &stubStructureRepo{byEmployee: map[string]*payroll.SalaryStructure{"EMP001": structure}}

	payRepo := &stubPayrollRepo{existing: map[string]*payroll.Payroll{
		"EMP001": {ID: "pr-1", EmployeeID: "EMP001", Month: 9, Year: 2025, Status: payroll.StatusProcessed},
	}}
	bonusRepo := &stubBonusRepo{payable: []payroll.Bonus{
		{ID: "bon-1", EmployeeID: "EMP001", Amount: decimal.NewFromInt(5000)},
	}}
	attRepo := &stubAttendanceRepo{present: 20, halfDays: 2, absent: 1}
	leaveRepo := &stubLeaveRequestRepo{paidDays: 1, unpaidDays: 2}
	holidayRepo := &stubHolidayRepo{inRange: []leave.Holiday{{Name: "Onam"}}}

	svc := NewPayrollService(
		nil,
		structRepo,
		payRepo,
		bonusRepo,
		&stubConfigRepo{},
		empRepo,
		attRepo,
		leaveRepo,
		holidayRepo,
		payroll.PayslipCompany{Name: "HRMS Lite"},
	)
	svc.now = func() time.Time { return time.Date(2025, 10, 1, 6, 0, 0, 0, time.UTC) }

	// September 2025: 30 days, 4 Sundays, 1 holiday.
	resp, err := svc.ProcessMonth(ctx, &payroll.ProcessMonthRequest{Month: 9, Year: 2025})
	require.NoError(t, err)

	assert.Empty(t, resp.Errors)
	require.Len(t, resp.Processed, 1)

	// The unlocked run is overwritten in place, never duplicated.
	require.NotNil(t, payRepo.updated)
	assert.Nil(t, payRepo.created)
	run := payRepo.updated
	assert.Equal(t, "pr-1", run.ID)
	assert.Equal(t, string(payroll.StatusProcessed), string(run.Status))

	assert.Equal(t, 25, run.Attendance.WorkingDays)
	assert.Equal(t, 22.0, run.Attendance.PresentDays)
	assert.Equal(t, 2.0, run.Attendance.LOPDays)
	assert.Equal(t, 1, run.Attendance.Holidays)
	assert.Equal(t, 4, run.Attendance.Weekoffs)

	// Per-day salary 75000/25 = 3000; LOP = 2 x 3000.
	assert.True(t, run.Deductions.LOPDeduction.Equal(decimal.NewFromInt(6000)),
		"lop deduction = %s", run.Deductions.LOPDeduction)
	assert.True(t, run.Earnings.Bonus.Equal(decimal.NewFromInt(5000)))

	assert.True(t, run.GrossEarnings.Equal(run.Earnings.Total()))
	assert.True(t, run.TotalDeductions.Equal(run.Deductions.Total()))
	assert.True(t, run.NetPayable.Equal(run.GrossEarnings.Sub(run.TotalDeductions)))
	assert.True(t, run.NetPayable.Equal(decimal.NewFromInt(72200)),
		"net payable = %s", run.NetPayable)
	assert.True(t, resp.Processed[0].NetPayable.Equal(run.NetPayable))

	// Folded bonuses are marked only after the write.
	assert.Equal(t, []string{"bon-1"}, bonusRepo.markedIDs)
}

func TestApproveRequiresProcessedStatus(t *testing.T) {
	ctx := context.Background()
	payRepo := &stubPayrollRepo{existing: map[string]*payroll.Payroll{
		"EMP001": {ID: "pr-1", EmployeeID: "EMP001", Status: payroll.StatusDraft},
	}}
	svc := newTestService(&stubEmployeeRepo{}, &stubStructureRepo{byEmployee: map[string]*payroll.SalaryStructure{}}, payRepo, &stubConfigRepo{})

	_, err := svc.Approve(ctx, "pr-1", "admin")
	assert.ErrorIs(t, err, payroll.ErrPayrollNotProcessed)
}

func TestApproveRejectsLocked(t *testing.T) {
	ctx := context.Background()
	payRepo := &stubPayrollRepo{existing: map[string]*payroll.Payroll{
		"EMP001": {ID: "pr-1", EmployeeID: "EMP001", Status: payroll.StatusLocked, IsLocked: true},
	}}
	svc := newTestService(&stubEmployeeRepo{}, &stubStructureRepo{byEmployee: map[string]*payroll.SalaryStructure{}}, payRepo, &stubConfigRepo{})

	_, err := svc.Approve(ctx, "pr-1", "admin")
	assert.ErrorIs(t, err, payroll.ErrPayrollLocked)
}

func TestApprove(t *testing.T) {
	ctx := context.Background()
	payRepo := &stubPayrollRepo{existing: map[string]*payroll.Payroll{
		"EMP001": {ID: "pr-1", EmployeeID: "EMP001", Status: payroll.StatusProcessed},
	}}
	svc := newTestService(&stubEmployeeRepo{}, &stubStructureRepo{byEmployee: map[string]*payroll.SalaryStructure{}}, payRepo, &stubConfigRepo{})

	resp, err := svc.Approve(ctx, "pr-1", "admin")
	require.NoError(t, err)

	assert.Equal(t, string(payroll.StatusApproved), resp.Status)
	assert.Equal(t, "admin", resp.ApprovedBy)
	assert.NotNil(t, resp.ApprovedOn)
}

func TestGetConfigFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&stubEmployeeRepo{}, &stubStructureRepo{byEmployee: map[string]*payroll.SalaryStructure{}}, &stubPayrollRepo{}, &stubConfigRepo{})

	cfg, err := svc.GetConfig(ctx)
	require.NoError(t, err)

	assert.True(t, cfg.PFPercentage.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, 28, cfg.PayrollProcessingDay)
}

func TestUpdateConfigPatchesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	cfgRepo := &stubConfigRepo{}
	svc := newTestService(&stubEmployeeRepo{}, &stubStructureRepo{byEmployee: map[string]*payroll.SalaryStructure{}}, &stubPayrollRepo{}, cfgRepo)

	day := 15
	cfg, err := svc.UpdateConfig(ctx, &payroll.UpdateConfigRequest{PayrollProcessingDay: &day})
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.PayrollProcessingDay)
	// Untouched fields keep their defaults.
	assert.True(t, cfg.PFPercentage.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, 1, cfg.PaymentDay)

	slabs := []payroll.TaxSlab{
		{MinSalary: decimal.Zero, MaxSalary: decimal.NewFromInt(15000), Tax: decimal.Zero},
		{MinSalary: decimal.NewFromInt(15001), MaxSalary: decimal.NewFromInt(20000), Tax: decimal.NewFromInt(150)},
	}
	cfg, err = svc.UpdateConfig(ctx, &payroll.UpdateConfigRequest{ProfessionalTaxSlabs: slabs})
	require.NoError(t, err)

	assert.Len(t, cfg.ProfessionalTaxSlabs, 2)
	// The earlier patch survives a slab-only update.
	assert.Equal(t, 15, cfg.PayrollProcessingDay)
}

func TestCreateBonusRejectsInvalidType(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&stubEmployeeRepo{}, &stubStructureRepo{byEmployee: map[string]*payroll.SalaryStructure{}}, &stubPayrollRepo{}, &stubConfigRepo{})

	_, err := svc.CreateBonus(ctx, &payroll.CreateBonusRequest{
		EmployeeID: "EMP001",
		Type:       "Surprise",
		Amount:     decimal.NewFromInt(1000),
		Month:      6,
		Year:       2025,
	})
	assert.Error(t, err)
}

func TestAutoProcessSkipsOffDays(t *testing.T) {
	ctx := context.Background()
	empRepo := &stubEmployeeRepo{active: []employee.Employee{
		{EmployeeID: "EMP001", FullName: "Asha Rao", Status: "Active"},
	}}
	svc := newTestService(empRepo, &stubStructureRepo{byEmployee: map[string]*payroll.SalaryStructure{}}, &stubPayrollRepo{existing: map[string]*payroll.Payroll{}}, &stubConfigRepo{})

	// Configured processing day is 28 (defaults); today is the 10th.
	svc.now = func() time.Time { return time.Date(2025, 6, 10, 6, 0, 0, 0, time.UTC) }
	require.NoError(t, svc.AutoProcess(ctx))
}
