package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hrmslite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

type salaryStructureRepository struct {
	db *database.DB
}

func NewSalaryStructureRepository(db *database.DB) payroll.SalaryStructureRepository {
	return &salaryStructureRepository{db: db}
}

const salaryStructureColumns = `
	s.id, s.employee_id, s.basic, s.hra,
	s.allowance_conveyance, s.allowance_medical, s.allowance_special,
	s.allowance_lta, s.allowance_food, s.allowance_other,
	s.deduction_pf, s.deduction_esi, s.deduction_professional_tax,
	s.deduction_tds, s.deduction_loan_recovery, s.deduction_other,
	s.gross_salary, s.net_salary, s.ctc, s.effective_from, s.is_active,
	s.created_at, s.updated_at
`

func scanSalaryStructure(row pgx.Row, dest *payroll.SalaryStructure) error {
	return row.Scan(
		&dest.ID, &dest.EmployeeID, &dest.Basic, &dest.HRA,
		&dest.Allowances.Conveyance, &dest.Allowances.Medical, &dest.Allowances.Special,
		&dest.Allowances.LTA, &dest.Allowances.Food, &dest.Allowances.Other,
		&dest.Deductions.PF, &dest.Deductions.ESI, &dest.Deductions.ProfessionalTax,
		&dest.Deductions.TDS, &dest.Deductions.LoanRecovery, &dest.Deductions.Other,
		&dest.GrossSalary, &dest.NetSalary, &dest.CTC, &dest.EffectiveFrom, &dest.IsActive,
		&dest.CreatedAt, &dest.UpdatedAt,
	)
}

func (r *salaryStructureRepository) Create(ctx context.Context, s *payroll.SalaryStructure) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_structures (
			id, employee_id, basic, hra,
			allowance_conveyance, allowance_medical, allowance_special,
			allowance_lta, allowance_food, allowance_other,
			deduction_pf, deduction_esi, deduction_professional_tax,
			deduction_tds, deduction_loan_recovery, deduction_other,
			gross_salary, net_salary, ctc, effective_from, is_active,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.EmployeeID, s.Basic, s.HRA,
		s.Allowances.Conveyance, s.Allowances.Medical, s.Allowances.Special,
		s.Allowances.LTA, s.Allowances.Food, s.Allowances.Other,
		s.Deductions.PF, s.Deductions.ESI, s.Deductions.ProfessionalTax,
		s.Deductions.TDS, s.Deductions.LoanRecovery, s.Deductions.Other,
		s.GrossSalary, s.NetSalary, s.CTC, s.EffectiveFrom, s.IsActive,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_salary_structures_employee") {
			return payroll.ErrSalaryStructureExists
		}
		return fmt.Errorf("failed to create salary structure: %w", err)
	}
	return nil
}

func (r *salaryStructureRepository) GetActiveByEmployee(ctx context.Context, employeeID string) (*payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryStructureColumns + ` FROM salary_structures s WHERE s.employee_id = $1 AND s.is_active = true`

	var s payroll.SalaryStructure
	if err := scanSalaryStructure(q.QueryRow(ctx, query, employeeID), &s); err != nil {
		if err == pgx.ErrNoRows {
			return nil, payroll.ErrSalaryStructureNotFound
		}
		return nil, fmt.Errorf("failed to get salary structure: %w", err)
	}
	return &s, nil
}

func (r *salaryStructureRepository) List(ctx context.Context) ([]payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryStructureColumns + `, e.full_name
		FROM salary_structures s
		JOIN employees e ON e.employee_id = s.employee_id
		WHERE s.is_active = true
		ORDER BY s.employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary structures: %w", err)
	}
	defer rows.Close()

	var structures []payroll.SalaryStructure
	for rows.Next() {
		var s payroll.SalaryStructure
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.Basic, &s.HRA,
			&s.Allowances.Conveyance, &s.Allowances.Medical, &s.Allowances.Special,
			&s.Allowances.LTA, &s.Allowances.Food, &s.Allowances.Other,
			&s.Deductions.PF, &s.Deductions.ESI, &s.Deductions.ProfessionalTax,
			&s.Deductions.TDS, &s.Deductions.LoanRecovery, &s.Deductions.Other,
			&s.GrossSalary, &s.NetSalary, &s.CTC, &s.EffectiveFrom, &s.IsActive,
			&s.CreatedAt, &s.UpdatedAt, &s.EmployeeName,
		); err != nil {
			return nil, err
		}
		structures = append(structures, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return structures, nil
}

func (r *salaryStructureRepository) Update(ctx context.Context, s *payroll.SalaryStructure) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_structures SET
			basic = $1, hra = $2,
			allowance_conveyance = $3, allowance_medical = $4, allowance_special = $5,
			allowance_lta = $6, allowance_food = $7, allowance_other = $8,
			deduction_pf = $9, deduction_esi = $10, deduction_professional_tax = $11,
			deduction_tds = $12, deduction_loan_recovery = $13, deduction_other = $14,
			gross_salary = $15, net_salary = $16, ctc = $17, effective_from = $18,
			updated_at = NOW()
		WHERE employee_id = $19 AND is_active = true
		RETURNING id, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.Basic, s.HRA,
		s.Allowances.Conveyance, s.Allowances.Medical, s.Allowances.Special,
		s.Allowances.LTA, s.Allowances.Food, s.Allowances.Other,
		s.Deductions.PF, s.Deductions.ESI, s.Deductions.ProfessionalTax,
		s.Deductions.TDS, s.Deductions.LoanRecovery, s.Deductions.Other,
		s.GrossSalary, s.NetSalary, s.CTC, s.EffectiveFrom, s.EmployeeID,
	).Scan(&s.ID, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrSalaryStructureNotFound
		}
		return fmt.Errorf("failed to update salary structure: %w", err)
	}
	return nil
}
