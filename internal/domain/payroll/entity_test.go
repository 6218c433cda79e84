package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSalaryStructureRecalculate(t *testing.T) {
	s := &SalaryStructure{
		Basic: decimal.NewFromInt(30000),
		HRA:   decimal.NewFromInt(12000),
		Allowances: Allowances{
			Conveyance: decimal.NewFromInt(1600),
			Medical:    decimal.NewFromInt(1250),
			Special:    decimal.NewFromInt(5150),
		},
		Deductions: StructureDeductions{
			PF:              decimal.NewFromInt(3600),
			ProfessionalTax: decimal.NewFromInt(200),
		},
	}
	s.Recalculate()

	if !s.GrossSalary.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("GrossSalary = %v, want 50000", s.GrossSalary)
	}
	if !s.NetSalary.Equal(decimal.NewFromInt(46200)) {
		t.Errorf("NetSalary = %v, want 46200", s.NetSalary)
	}
	// CTC adds the employer PF contribution back on top of gross.
	if !s.CTC.Equal(decimal.NewFromInt(53600)) {
		t.Errorf("CTC = %v, want 53600", s.CTC)
	}
}

func TestPayrollComputeTotals(t *testing.T) {
	p := &Payroll{
		Earnings: Earnings{
			Basic: decimal.NewFromInt(30000),
			HRA:   decimal.NewFromInt(12000),
			Bonus: decimal.NewFromInt(5000),
		},
		Deductions: Deductions{
			PF:           decimal.NewFromInt(3600),
			LOPDeduction: decimal.NewFromInt(2000),
		},
		// Stored totals must be ignored, not trusted.
		GrossEarnings:   decimal.NewFromInt(999999),
		TotalDeductions: decimal.NewFromInt(999999),
		NetPayable:      decimal.NewFromInt(999999),
	}
	p.ComputeTotals()

	if !p.GrossEarnings.Equal(decimal.NewFromInt(47000)) {
		t.Errorf("GrossEarnings = %v, want 47000", p.GrossEarnings)
	}
	if !p.TotalDeductions.Equal(decimal.NewFromInt(5600)) {
		t.Errorf("TotalDeductions = %v, want 5600", p.TotalDeductions)
	}
	if !p.NetPayable.Equal(decimal.NewFromInt(41400)) {
		t.Errorf("NetPayable = %v, want 41400", p.NetPayable)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.PFPercentage.Equal(decimal.NewFromInt(12)) {
		t.Errorf("PFPercentage = %v, want 12", cfg.PFPercentage)
	}
	if !cfg.ESIThreshold.Equal(decimal.NewFromInt(21000)) {
		t.Errorf("ESIThreshold = %v, want 21000", cfg.ESIThreshold)
	}
	if cfg.PayrollProcessingDay != 28 {
		t.Errorf("PayrollProcessingDay = %d, want 28", cfg.PayrollProcessingDay)
	}
	if !cfg.IsActive {
		t.Error("IsActive = false, want true")
	}
}
