package payroll

import "context"

type SalaryStructureRepository interface {
	Create(ctx context.Context, s *SalaryStructure) error
	GetActiveByEmployee(ctx context.Context, employeeID string) (*SalaryStructure, error)
	List(ctx context.Context) ([]SalaryStructure, error)
	Update(ctx context.Context, s *SalaryStructure) error
}

type PayrollRepository interface {
	Create(ctx context.Context, p *Payroll) error
	GetByID(ctx context.Context, id string) (*Payroll, error)
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) (*Payroll, error)
	Update(ctx context.Context, p *Payroll) error
	List(ctx context.Context, filter PayrollFilter) ([]Payroll, error)
	// LockMonth flips every Processed or Approved payroll of the month to
	// Locked in one statement.
	LockMonth(ctx context.Context, month, year int) (int64, error)
	Stats(ctx context.Context, month, year int) (*PayrollStats, error)
}

type BonusRepository interface {
	Create(ctx context.Context, b *Bonus) error
	GetByID(ctx context.Context, id string) (*Bonus, error)
	List(ctx context.Context, employeeID string, month, year int) ([]Bonus, error)
	ListPayable(ctx context.Context, employeeID string, month, year int) ([]Bonus, error)
	Update(ctx context.Context, b *Bonus) error
	MarkIncluded(ctx context.Context, ids []string) error
}

type ConfigRepository interface {
	Get(ctx context.Context) (*Config, error)
	Upsert(ctx context.Context, c *Config) error
}

type PayrollService interface {
	UpsertSalaryStructure(ctx context.Context, req *UpsertSalaryStructureRequest) (*SalaryStructureResponse, error)
	GetSalaryStructure(ctx context.Context, employeeID string) (*SalaryStructureResponse, error)
	ListSalaryStructures(ctx context.Context) ([]SalaryStructureResponse, error)

	ProcessMonth(ctx context.Context, req *ProcessMonthRequest) (*ProcessMonthResponse, error)
	LockMonth(ctx context.Context, req *LockMonthRequest) (int64, error)
	Approve(ctx context.Context, id, approvedBy string) (*PayrollResponse, error)
	List(ctx context.Context, filter PayrollFilter) ([]PayrollResponse, error)
	Payslip(ctx context.Context, employeeID string, month, year int) (*PayslipResponse, error)

	CreateBonus(ctx context.Context, req *CreateBonusRequest) (*BonusResponse, error)
	ApproveBonus(ctx context.Context, id, approvedBy string) (*BonusResponse, error)
	ListBonuses(ctx context.Context, employeeID string, month, year int) ([]BonusResponse, error)

	GetConfig(ctx context.Context) (*ConfigResponse, error)
	UpdateConfig(ctx context.Context, req *UpdateConfigRequest) (*ConfigResponse, error)

	Stats(ctx context.Context, month, year int) (*PayrollStats, error)
}
