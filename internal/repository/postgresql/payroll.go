package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hrmslite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.month, p.year,
	p.earning_basic, p.earning_hra, p.earning_conveyance, p.earning_medical,
	p.earning_special, p.earning_lta, p.earning_food, p.earning_other_allowances,
	p.earning_bonus, p.earning_incentive, p.earning_overtime, p.earning_arrears,
	p.deduction_pf, p.deduction_esi, p.deduction_professional_tax, p.deduction_tds,
	p.deduction_loan_recovery, p.deduction_lop, p.deduction_other,
	p.working_days, p.present_days, p.absent_days, p.lop_days, p.paid_leave_days,
	p.holidays, p.weekoffs,
	p.gross_earnings, p.total_deductions, p.net_payable,
	p.status, p.processed_by, p.processed_on, p.approved_by, p.approved_on,
	p.paid_on, p.payment_mode, p.remarks, p.is_locked,
	p.created_at, p.updated_at
`

func scanPayroll(row pgx.Row, p *payroll.Payroll, extra ...interface{}) error {
	var processedBy, approvedBy, paymentMode, remarks *string

	dest := []interface{}{
		&p.ID, &p.EmployeeID, &p.Month, &p.Year,
		&p.Earnings.Basic, &p.Earnings.HRA, &p.Earnings.Conveyance, &p.Earnings.Medical,
		&p.Earnings.Special, &p.Earnings.LTA, &p.Earnings.Food, &p.Earnings.OtherAllowances,
		&p.Earnings.Bonus, &p.Earnings.Incentive, &p.Earnings.Overtime, &p.Earnings.Arrears,
		&p.Deductions.PF, &p.Deductions.ESI, &p.Deductions.ProfessionalTax, &p.Deductions.TDS,
		&p.Deductions.LoanRecovery, &p.Deductions.LOPDeduction, &p.Deductions.OtherDeductions,
		&p.Attendance.WorkingDays, &p.Attendance.PresentDays, &p.Attendance.AbsentDays,
		&p.Attendance.LOPDays, &p.Attendance.PaidLeaveDays, &p.Attendance.Holidays, &p.Attendance.Weekoffs,
		&p.GrossEarnings, &p.TotalDeductions, &p.NetPayable,
		&p.Status, &processedBy, &p.ProcessedOn, &approvedBy, &p.ApprovedOn,
		&p.PaidOn, &paymentMode, &remarks, &p.IsLocked,
		&p.CreatedAt, &p.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return err
	}
	if processedBy != nil {
		p.ProcessedBy = *processedBy
	}
	if approvedBy != nil {
		p.ApprovedBy = *approvedBy
	}
	if paymentMode != nil {
		p.PaymentMode = *paymentMode
	}
	if remarks != nil {
		p.Remarks = *remarks
	}
	return nil
}

func (r *payrollRepository) Create(ctx context.Context, p *payroll.Payroll) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			id, employee_id, month, year,
			earning_basic, earning_hra, earning_conveyance, earning_medical,
			earning_special, earning_lta, earning_food, earning_other_allowances,
			earning_bonus, earning_incentive, earning_overtime, earning_arrears,
			deduction_pf, deduction_esi, deduction_professional_tax, deduction_tds,
			deduction_loan_recovery, deduction_lop, deduction_other,
			working_days, present_days, absent_days, lop_days, paid_leave_days,
			holidays, weekoffs,
			gross_earnings, total_deductions, net_payable,
			status, processed_by, processed_on, payment_mode, is_locked,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22,
			$23, $24, $25, $26, $27, $28, $29,
			$30, $31, $32,
			$33, $34, $35, $36, $37,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.EmployeeID, p.Month, p.Year,
		p.Earnings.Basic, p.Earnings.HRA, p.Earnings.Conveyance, p.Earnings.Medical,
		p.Earnings.Special, p.Earnings.LTA, p.Earnings.Food, p.Earnings.OtherAllowances,
		p.Earnings.Bonus, p.Earnings.Incentive, p.Earnings.Overtime, p.Earnings.Arrears,
		p.Deductions.PF, p.Deductions.ESI, p.Deductions.ProfessionalTax, p.Deductions.TDS,
		p.Deductions.LoanRecovery, p.Deductions.LOPDeduction, p.Deductions.OtherDeductions,
		p.Attendance.WorkingDays, p.Attendance.PresentDays, p.Attendance.AbsentDays,
		p.Attendance.LOPDays, p.Attendance.PaidLeaveDays, p.Attendance.Holidays, p.Attendance.Weekoffs,
		p.GrossEarnings, p.TotalDeductions, p.NetPayable,
		p.Status, nullIfEmpty(p.ProcessedBy), p.ProcessedOn, p.PaymentMode, p.IsLocked,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payroll: %w", err)
	}
	return nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (*payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payrolls p WHERE p.id = $1`

	var p payroll.Payroll
	if err := scanPayroll(q.QueryRow(ctx, query, id), &p); err != nil {
		if err == pgx.ErrNoRows {
			return nil, payroll.ErrPayrollNotFound
		}
		return nil, fmt.Errorf("failed to get payroll: %w", err)
	}
	return &p, nil
}

func (r *payrollRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) (*payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payrolls p WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3`

	var p payroll.Payroll
	if err := scanPayroll(q.QueryRow(ctx, query, employeeID, month, year), &p); err != nil {
		if err == pgx.ErrNoRows {
			return nil, payroll.ErrPayrollNotFound
		}
		return nil, fmt.Errorf("failed to get payroll: %w", err)
	}
	return &p, nil
}

func (r *payrollRepository) Update(ctx context.Context, p *payroll.Payroll) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls SET
			earning_basic = $1, earning_hra = $2, earning_conveyance = $3, earning_medical = $4,
			earning_special = $5, earning_lta = $6, earning_food = $7, earning_other_allowances = $8,
			earning_bonus = $9, earning_incentive = $10, earning_overtime = $11, earning_arrears = $12,
			deduction_pf = $13, deduction_esi = $14, deduction_professional_tax = $15, deduction_tds = $16,
			deduction_loan_recovery = $17, deduction_lop = $18, deduction_other = $19,
			working_days = $20, present_days = $21, absent_days = $22, lop_days = $23,
			paid_leave_days = $24, holidays = $25, weekoffs = $26,
			gross_earnings = $27, total_deductions = $28, net_payable = $29,
			status = $30, processed_by = $31, processed_on = $32,
			approved_by = $33, approved_on = $34, is_locked = $35,
			updated_at = NOW()
		WHERE id = $36
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		p.Earnings.Basic, p.Earnings.HRA, p.Earnings.Conveyance, p.Earnings.Medical,
		p.Earnings.Special, p.Earnings.LTA, p.Earnings.Food, p.Earnings.OtherAllowances,
		p.Earnings.Bonus, p.Earnings.Incentive, p.Earnings.Overtime, p.Earnings.Arrears,
		p.Deductions.PF, p.Deductions.ESI, p.Deductions.ProfessionalTax, p.Deductions.TDS,
		p.Deductions.LoanRecovery, p.Deductions.LOPDeduction, p.Deductions.OtherDeductions,
		p.Attendance.WorkingDays, p.Attendance.PresentDays, p.Attendance.AbsentDays,
		p.Attendance.LOPDays, p.Attendance.PaidLeaveDays, p.Attendance.Holidays, p.Attendance.Weekoffs,
		p.GrossEarnings, p.TotalDeductions, p.NetPayable,
		p.Status, nullIfEmpty(p.ProcessedBy), p.ProcessedOn,
		nullIfEmpty(p.ApprovedBy), p.ApprovedOn, p.IsLocked,
		p.ID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPayrollNotFound
		}
		return fmt.Errorf("failed to update payroll: %w", err)
	}
	return nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Month != 0 {
		conditions = append(conditions, fmt.Sprintf("p.month = $%d", argIdx))
		args = append(args, filter.Month)
		argIdx++
	}
	if filter.Year != 0 {
		conditions = append(conditions, fmt.Sprintf("p.year = $%d", argIdx))
		args = append(args, filter.Year)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}

	query := `
		SELECT ` + payrollColumns + `, e.full_name
		FROM payrolls p
		JOIN employees e ON e.employee_id = p.employee_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.year DESC, p.month DESC, e.full_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		if err := scanPayroll(rows, &p, &p.EmployeeName); err != nil {
			return nil, err
		}
		payrolls = append(payrolls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return payrolls, nil
}

func (r *payrollRepository) LockMonth(ctx context.Context, month, year int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET is_locked = true, status = 'Locked', updated_at = NOW()
		WHERE month = $1 AND year = $2 AND status IN ('Processed', 'Approved')
	`

	tag, err := q.Exec(ctx, query, month, year)
	if err != nil {
		return 0, fmt.Errorf("failed to lock payrolls: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *payrollRepository) Stats(ctx context.Context, month, year int) (*payroll.PayrollStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(net_payable), 0), COALESCE(SUM(gross_earnings), 0),
			   COALESCE(SUM(total_deductions), 0), COUNT(*),
			   COUNT(*) FILTER (WHERE is_locked)
		FROM payrolls
		WHERE month = $1 AND year = $2
	`

	stats := payroll.PayrollStats{Month: month, Year: year}
	err := q.QueryRow(ctx, query, month, year).Scan(
		&stats.TotalNetPayable, &stats.TotalGross, &stats.TotalDeductions,
		&stats.EmployeeCount, &stats.LockedCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll stats: %w", err)
	}
	return &stats, nil
}
