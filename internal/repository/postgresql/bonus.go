package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hrmslite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

type bonusRepository struct {
	db *database.DB
}

func NewBonusRepository(db *database.DB) payroll.BonusRepository {
	return &bonusRepository{db: db}
}

const bonusColumns = `
	b.id, b.employee_id, b.type, b.amount, b.month, b.year, b.reason,
	b.status, b.approved_by, b.approved_on, b.paid_on, b.included_in_payroll,
	b.created_at, b.updated_at
`

func scanBonus(row pgx.Row, b *payroll.Bonus, extra ...interface{}) error {
	var reason, approvedBy *string

	dest := []interface{}{
		&b.ID, &b.EmployeeID, &b.Type, &b.Amount, &b.Month, &b.Year, &reason,
		&b.Status, &approvedBy, &b.ApprovedOn, &b.PaidOn, &b.IncludedInPayroll,
		&b.CreatedAt, &b.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return err
	}
	if reason != nil {
		b.Reason = *reason
	}
	if approvedBy != nil {
		b.ApprovedBy = *approvedBy
	}
	return nil
}

func (r *bonusRepository) Create(ctx context.Context, b *payroll.Bonus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bonuses (
			id, employee_id, type, amount, month, year, reason, status, included_in_payroll,
			created_at, updated_at
		) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		b.EmployeeID, b.Type, b.Amount, b.Month, b.Year, nullIfEmpty(b.Reason), b.Status, b.IncludedInPayroll,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create bonus: %w", err)
	}
	return nil
}

func (r *bonusRepository) GetByID(ctx context.Context, id string) (*payroll.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + bonusColumns + ` FROM bonuses b WHERE b.id = $1`

	var b payroll.Bonus
	if err := scanBonus(q.QueryRow(ctx, query, id), &b); err != nil {
		if err == pgx.ErrNoRows {
			return nil, payroll.ErrBonusNotFound
		}
		return nil, fmt.Errorf("failed to get bonus: %w", err)
	}
	return &b, nil
}

func (r *bonusRepository) List(ctx context.Context, employeeID string, month, year int) ([]payroll.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if employeeID != "" {
		conditions = append(conditions, fmt.Sprintf("b.employee_id = $%d", argIdx))
		args = append(args, employeeID)
		argIdx++
	}
	if month != 0 {
		conditions = append(conditions, fmt.Sprintf("b.month = $%d", argIdx))
		args = append(args, month)
		argIdx++
	}
	if year != 0 {
		conditions = append(conditions, fmt.Sprintf("b.year = $%d", argIdx))
		args = append(args, year)
		argIdx++
	}

	query := `
		SELECT ` + bonusColumns + `, e.full_name
		FROM bonuses b
		JOIN employees e ON e.employee_id = b.employee_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY b.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonuses: %w", err)
	}
	defer rows.Close()

	var bonuses []payroll.Bonus
	for rows.Next() {
		var b payroll.Bonus
		if err := scanBonus(rows, &b, &b.EmployeeName); err != nil {
			return nil, err
		}
		bonuses = append(bonuses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bonuses, nil
}

// ListPayable returns approved bonuses for the month that no payroll run has
// absorbed yet.
func (r *bonusRepository) ListPayable(ctx context.Context, employeeID string, month, year int) ([]payroll.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + bonusColumns + `
		FROM bonuses b
		WHERE b.employee_id = $1 AND b.month = $2 AND b.year = $3
		  AND b.status = 'Approved' AND b.included_in_payroll = false
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payable bonuses: %w", err)
	}
	defer rows.Close()

	var bonuses []payroll.Bonus
	for rows.Next() {
		var b payroll.Bonus
		if err := scanBonus(rows, &b); err != nil {
			return nil, err
		}
		bonuses = append(bonuses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bonuses, nil
}

func (r *bonusRepository) Update(ctx context.Context, b *payroll.Bonus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bonuses
		SET status = $1, approved_by = $2, approved_on = $3, paid_on = $4,
			included_in_payroll = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		b.Status, nullIfEmpty(b.ApprovedBy), b.ApprovedOn, b.PaidOn, b.IncludedInPayroll, b.ID,
	).Scan(&b.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrBonusNotFound
		}
		return fmt.Errorf("failed to update bonus: %w", err)
	}
	return nil
}

func (r *bonusRepository) MarkIncluded(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	query := `UPDATE bonuses SET included_in_payroll = true, updated_at = NOW() WHERE id = ANY($1)`

	if _, err := q.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("failed to mark bonuses as included: %w", err)
	}
	return nil
}
