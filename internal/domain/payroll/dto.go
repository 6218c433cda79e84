package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

type AllowancesInput struct {
	Conveyance decimal.Decimal `json:"conveyance"`
	Medical    decimal.Decimal `json:"medical"`
	Special    decimal.Decimal `json:"special"`
	LTA        decimal.Decimal `json:"lta"`
	Food       decimal.Decimal `json:"food"`
	Other      decimal.Decimal `json:"other"`
}

type DeductionsInput struct {
	PF              decimal.Decimal `json:"pf"`
	ESI             decimal.Decimal `json:"esi"`
	ProfessionalTax decimal.Decimal `json:"professionalTax"`
	TDS             decimal.Decimal `json:"tds"`
	LoanRecovery    decimal.Decimal `json:"loanRecovery"`
	Other           decimal.Decimal `json:"other"`
}

type UpsertSalaryStructureRequest struct {
	EmployeeID    string          `json:"employeeId"`
	Basic         decimal.Decimal `json:"basic"`
	HRA           decimal.Decimal `json:"hra"`
	Allowances    AllowancesInput `json:"allowances"`
	Deductions    DeductionsInput `json:"deductions"`
	EffectiveFrom *string         `json:"effectiveFrom,omitempty"`
}

func (r *UpsertSalaryStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if r.Basic.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic", Message: "must not be negative"})
	}
	if r.HRA.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hra", Message: "must not be negative"})
	}
	if r.EffectiveFrom != nil && !validator.IsValidDate(*r.EffectiveFrom) {
		errs = append(errs, validator.ValidationError{Field: "effectiveFrom", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryStructureResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employeeId"`
	EmployeeName  string          `json:"employeeName,omitempty"`
	Basic         decimal.Decimal `json:"basic"`
	HRA           decimal.Decimal `json:"hra"`
	Allowances    AllowancesInput `json:"allowances"`
	Deductions    DeductionsInput `json:"deductions"`
	GrossSalary   decimal.Decimal `json:"grossSalary"`
	NetSalary     decimal.Decimal `json:"netSalary"`
	CTC           decimal.Decimal `json:"ctc"`
	EffectiveFrom string          `json:"effectiveFrom"`
	IsActive      bool            `json:"isActive"`
}

type ProcessMonthRequest struct {
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	ProcessedBy string `json:"processedBy"`
}

func (r *ProcessMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LockMonthRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *LockMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ProcessedEntry reports one employee's outcome in a batch run.
type ProcessedEntry struct {
	EmployeeID string          `json:"employeeId"`
	Name       string          `json:"name"`
	NetPayable decimal.Decimal `json:"netPayable"`
}

type ProcessErrorEntry struct {
	EmployeeID string `json:"employeeId"`
	Error      string `json:"error"`
}

type ProcessMonthResponse struct {
	Processed []ProcessedEntry    `json:"processed"`
	Errors    []ProcessErrorEntry `json:"errors"`
}

type EarningsResponse struct {
	Basic           decimal.Decimal `json:"basic"`
	HRA             decimal.Decimal `json:"hra"`
	Conveyance      decimal.Decimal `json:"conveyance"`
	Medical         decimal.Decimal `json:"medical"`
	Special         decimal.Decimal `json:"special"`
	LTA             decimal.Decimal `json:"lta"`
	Food            decimal.Decimal `json:"food"`
	OtherAllowances decimal.Decimal `json:"otherAllowances"`
	Bonus           decimal.Decimal `json:"bonus"`
	Incentive       decimal.Decimal `json:"incentive"`
	Overtime        decimal.Decimal `json:"overtime"`
	Arrears         decimal.Decimal `json:"arrears"`
}

type DeductionsResponse struct {
	PF              decimal.Decimal `json:"pf"`
	ESI             decimal.Decimal `json:"esi"`
	ProfessionalTax decimal.Decimal `json:"professionalTax"`
	TDS             decimal.Decimal `json:"tds"`
	LoanRecovery    decimal.Decimal `json:"loanRecovery"`
	LOPDeduction    decimal.Decimal `json:"lopDeduction"`
	OtherDeductions decimal.Decimal `json:"otherDeductions"`
}

type AttendanceSummaryResponse struct {
	WorkingDays   int     `json:"workingDays"`
	PresentDays   float64 `json:"presentDays"`
	AbsentDays    int     `json:"absentDays"`
	LOPDays       float64 `json:"lopDays"`
	PaidLeaveDays float64 `json:"paidLeaveDays"`
	Holidays      int     `json:"holidays"`
	Weekoffs      int     `json:"weekoffs"`
}

type PayrollResponse struct {
	ID              string                    `json:"id"`
	EmployeeID      string                    `json:"employeeId"`
	EmployeeName    string                    `json:"employeeName,omitempty"`
	Month           int                       `json:"month"`
	Year            int                       `json:"year"`
	Earnings        EarningsResponse          `json:"earnings"`
	Deductions      DeductionsResponse        `json:"deductions"`
	Attendance      AttendanceSummaryResponse `json:"attendance"`
	GrossEarnings   decimal.Decimal           `json:"grossEarnings"`
	TotalDeductions decimal.Decimal           `json:"totalDeductions"`
	NetPayable      decimal.Decimal           `json:"netPayable"`
	Status          string                    `json:"status"`
	ProcessedBy     string                    `json:"processedBy,omitempty"`
	ProcessedOn     *string                   `json:"processedOn,omitempty"`
	ApprovedBy      string                    `json:"approvedBy,omitempty"`
	ApprovedOn      *string                   `json:"approvedOn,omitempty"`
	IsLocked        bool                      `json:"isLocked"`
}

type PayslipEmployee struct {
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Department string `json:"department,omitempty"`
}

type PayslipCompany struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type PayslipResponse struct {
	Payroll  PayrollResponse `json:"payroll"`
	Employee PayslipEmployee `json:"employee"`
	Company  PayslipCompany  `json:"company"`
}

type PayrollFilter struct {
	EmployeeID string
	Month      int
	Year       int
	Status     string
}

type CreateBonusRequest struct {
	EmployeeID string          `json:"employeeId"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Reason     string          `json:"reason"`
}

func (r *CreateBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	validType := false
	for _, t := range ValidBonusTypes {
		if r.Type == t {
			validType = true
			break
		}
	}
	if !validType {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "is not a valid bonus type"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must not be negative"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BonusResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employeeId"`
	EmployeeName      string          `json:"employeeName,omitempty"`
	Type              string          `json:"type"`
	Amount            decimal.Decimal `json:"amount"`
	Month             int             `json:"month"`
	Year              int             `json:"year"`
	Reason            string          `json:"reason,omitempty"`
	Status            string          `json:"status"`
	ApprovedBy        string          `json:"approvedBy,omitempty"`
	IncludedInPayroll bool            `json:"includedInPayroll"`
}

type UpdateConfigRequest struct {
	PFPercentage         *decimal.Decimal `json:"pfPercentage,omitempty"`
	ESIPercentage        *decimal.Decimal `json:"esiPercentage,omitempty"`
	ESIThreshold         *decimal.Decimal `json:"esiThreshold,omitempty"`
	ProfessionalTaxSlabs []TaxSlab        `json:"professionalTaxSlabs,omitempty"`
	PayrollProcessingDay *int             `json:"payrollProcessingDay,omitempty"`
	PaymentDay           *int             `json:"paymentDay,omitempty"`
	FinancialYearStart   *int             `json:"financialYearStart,omitempty"`
}

func (r *UpdateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PayrollProcessingDay != nil && (*r.PayrollProcessingDay < 1 || *r.PayrollProcessingDay > 28) {
		errs = append(errs, validator.ValidationError{Field: "payrollProcessingDay", Message: "must be between 1 and 28"})
	}
	if r.PaymentDay != nil && (*r.PaymentDay < 1 || *r.PaymentDay > 28) {
		errs = append(errs, validator.ValidationError{Field: "paymentDay", Message: "must be between 1 and 28"})
	}
	if r.FinancialYearStart != nil && !validator.IsValidMonth(*r.FinancialYearStart) {
		errs = append(errs, validator.ValidationError{Field: "financialYearStart", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConfigResponse struct {
	PFPercentage         decimal.Decimal `json:"pfPercentage"`
	ESIPercentage        decimal.Decimal `json:"esiPercentage"`
	ESIThreshold         decimal.Decimal `json:"esiThreshold"`
	ProfessionalTaxSlabs []TaxSlab       `json:"professionalTaxSlabs"`
	PayrollProcessingDay int             `json:"payrollProcessingDay"`
	PaymentDay           int             `json:"paymentDay"`
	FinancialYearStart   int             `json:"financialYearStart"`
}

type PayrollStats struct {
	TotalNetPayable decimal.Decimal `json:"totalNetPayable"`
	TotalGross      decimal.Decimal `json:"totalGross"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	EmployeeCount   int64           `json:"employeeCount"`
	LockedCount     int64           `json:"lockedCount"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
}
