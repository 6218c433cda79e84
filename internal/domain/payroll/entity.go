package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayrollStatus string

const (
	StatusDraft     PayrollStatus = "Draft"
	StatusProcessed PayrollStatus = "Processed"
	StatusApproved  PayrollStatus = "Approved"
	StatusPaid      PayrollStatus = "Paid"
	StatusLocked    PayrollStatus = "Locked"
)

type BonusStatus string

const (
	BonusPending   BonusStatus = "Pending"
	BonusApproved  BonusStatus = "Approved"
	BonusPaid      BonusStatus = "Paid"
	BonusCancelled BonusStatus = "Cancelled"
)

var ValidBonusTypes = []string{
	"Performance Bonus", "Festival Bonus", "Annual Bonus", "Referral Bonus", "Incentive", "Other",
}

// Allowances are the fixed allowance heads of a salary structure.
type Allowances struct {
	Conveyance decimal.Decimal
	Medical    decimal.Decimal
	Special    decimal.Decimal
	LTA        decimal.Decimal
	Food       decimal.Decimal
	Other      decimal.Decimal
}

func (a Allowances) Total() decimal.Decimal {
	return a.Conveyance.Add(a.Medical).Add(a.Special).Add(a.LTA).Add(a.Food).Add(a.Other)
}

// StructureDeductions are the fixed deduction heads of a salary structure.
type StructureDeductions struct {
	PF              decimal.Decimal
	ESI             decimal.Decimal
	ProfessionalTax decimal.Decimal
	TDS             decimal.Decimal
	LoanRecovery    decimal.Decimal
	Other           decimal.Decimal
}

func (d StructureDeductions) Total() decimal.Decimal {
	return d.PF.Add(d.ESI).Add(d.ProfessionalTax).Add(d.TDS).Add(d.LoanRecovery).Add(d.Other)
}

type SalaryStructure struct {
	ID            string
	EmployeeID    string
	Basic         decimal.Decimal
	HRA           decimal.Decimal
	Allowances    Allowances
	Deductions    StructureDeductions
	GrossSalary   decimal.Decimal
	NetSalary     decimal.Decimal
	CTC           decimal.Decimal
	EffectiveFrom time.Time
	IsActive      bool

	// Joined fields.
	EmployeeName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Recalculate derives the gross, net, and CTC figures from the components.
// CTC adds the employer PF contribution back on top of gross.
func (s *SalaryStructure) Recalculate() {
	s.GrossSalary = s.Basic.Add(s.HRA).Add(s.Allowances.Total())
	s.NetSalary = s.GrossSalary.Sub(s.Deductions.Total())
	s.CTC = s.GrossSalary.Add(s.Deductions.PF)
}

// Earnings is the flattened earnings breakdown of a monthly payroll.
type Earnings struct {
	Basic           decimal.Decimal
	HRA             decimal.Decimal
	Conveyance      decimal.Decimal
	Medical         decimal.Decimal
	Special         decimal.Decimal
	LTA             decimal.Decimal
	Food            decimal.Decimal
	OtherAllowances decimal.Decimal
	Bonus           decimal.Decimal
	Incentive       decimal.Decimal
	Overtime        decimal.Decimal
	Arrears         decimal.Decimal
}

func (e Earnings) Total() decimal.Decimal {
	return e.Basic.Add(e.HRA).
		Add(e.Conveyance).Add(e.Medical).Add(e.Special).Add(e.LTA).Add(e.Food).Add(e.OtherAllowances).
		Add(e.Bonus).Add(e.Incentive).Add(e.Overtime).Add(e.Arrears)
}

// Deductions is the flattened deductions breakdown of a monthly payroll.
type Deductions struct {
	PF              decimal.Decimal
	ESI             decimal.Decimal
	ProfessionalTax decimal.Decimal
	TDS             decimal.Decimal
	LoanRecovery    decimal.Decimal
	LOPDeduction    decimal.Decimal
	OtherDeductions decimal.Decimal
}

func (d Deductions) Total() decimal.Decimal {
	return d.PF.Add(d.ESI).Add(d.ProfessionalTax).Add(d.TDS).Add(d.LoanRecovery).
		Add(d.LOPDeduction).Add(d.OtherDeductions)
}

// AttendanceSummary is the attendance snapshot frozen into a payroll run.
type AttendanceSummary struct {
	WorkingDays   int
	PresentDays   float64
	AbsentDays    int
	LOPDays       float64
	PaidLeaveDays float64
	Holidays      int
	Weekoffs      int
}

type Payroll struct {
	ID         string
	EmployeeID string
	Month      int
	Year       int

	Earnings   Earnings
	Deductions Deductions
	Attendance AttendanceSummary

	GrossEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPayable      decimal.Decimal

	Status      PayrollStatus
	ProcessedBy string
	ProcessedOn *time.Time
	ApprovedBy  string
	ApprovedOn  *time.Time
	PaidOn      *time.Time
	PaymentMode string
	Remarks     string
	IsLocked    bool

	// Joined fields.
	EmployeeName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ComputeTotals rederives the totals from the breakdowns. Stored totals are
// never trusted as inputs; this must run after any breakdown change.
func (p *Payroll) ComputeTotals() {
	p.GrossEarnings = p.Earnings.Total()
	p.TotalDeductions = p.Deductions.Total()
	p.NetPayable = p.GrossEarnings.Sub(p.TotalDeductions)
}

type Bonus struct {
	ID                string
	EmployeeID        string
	Type              string
	Amount            decimal.Decimal
	Month             int
	Year              int
	Reason            string
	Status            BonusStatus
	ApprovedBy        string
	ApprovedOn        *time.Time
	PaidOn            *time.Time
	IncludedInPayroll bool

	// Joined fields.
	EmployeeName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaxSlab is one professional-tax bracket of the payroll config.
type TaxSlab struct {
	MinSalary decimal.Decimal `json:"minSalary"`
	MaxSalary decimal.Decimal `json:"maxSalary"`
	Tax       decimal.Decimal `json:"tax"`
}

// Config holds the company-wide payroll settings.
type Config struct {
	ID                   string
	PFPercentage         decimal.Decimal
	ESIPercentage        decimal.Decimal
	ESIThreshold         decimal.Decimal
	ProfessionalTaxSlabs []TaxSlab
	PayrollProcessingDay int
	PaymentDay           int
	FinancialYearStart   int
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func DefaultConfig() Config {
	return Config{
		PFPercentage:         decimal.NewFromInt(12),
		ESIPercentage:        decimal.RequireFromString("0.75"),
		ESIThreshold:         decimal.NewFromInt(21000),
		PayrollProcessingDay: 28,
		PaymentDay:           1,
		FinancialYearStart:   4,
		IsActive:             true,
	}
}
