package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hrmslite/hrms-backend-go/internal/domain/leave"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

type leaveBalanceRepository struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepository{db: db}
}

func (r *leaveBalanceRepository) Create(ctx context.Context, b *leave.LeaveBalance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (
			id, employee_id, leave_type_id, year, allocated, used, pending, carry_forward,
			created_at, updated_at
		) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (employee_id, leave_type_id, year) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		b.EmployeeID, b.LeaveTypeID, b.Year, b.Allocated, b.Used, b.Pending, b.CarryForward,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Balance row already exists for this employee, type, and year.
			return nil
		}
		return fmt.Errorf("failed to create leave balance: %w", err)
	}
	return nil
}

func (r *leaveBalanceRepository) GetByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID string, year int) (*leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.employee_id, b.leave_type_id, b.year,
			   b.allocated, b.used, b.pending, b.carry_forward,
			   lt.name, lt.code, lt.is_paid,
			   b.created_at, b.updated_at
		FROM leave_balances b
		JOIN leave_types lt ON lt.id = b.leave_type_id
		WHERE b.employee_id = $1 AND b.leave_type_id = $2 AND b.year = $3
	`

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, leaveTypeID, year).Scan(
		&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year,
		&b.Allocated, &b.Used, &b.Pending, &b.CarryForward,
		&b.LeaveTypeName, &b.LeaveTypeCode, &b.IsPaid,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, leave.ErrBalanceNotFound
		}
		return nil, fmt.Errorf("failed to get leave balance: %w", err)
	}
	return &b, nil
}

func (r *leaveBalanceRepository) ListByEmployee(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.employee_id, b.leave_type_id, b.year,
			   b.allocated, b.used, b.pending, b.carry_forward,
			   lt.name, lt.code, lt.is_paid,
			   b.created_at, b.updated_at
		FROM leave_balances b
		JOIN leave_types lt ON lt.id = b.leave_type_id
		WHERE b.employee_id = $1 AND b.year = $2
		ORDER BY lt.name
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		var b leave.LeaveBalance
		if err := rows.Scan(
			&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year,
			&b.Allocated, &b.Used, &b.Pending, &b.CarryForward,
			&b.LeaveTypeName, &b.LeaveTypeCode, &b.IsPaid,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return balances, nil
}

// ApplyPending moves days into the pending bucket. The WHERE clause enforces
// the available-balance check in the same statement, so concurrent requests
// cannot both draw from the same remaining days.
func (r *leaveBalanceRepository) ApplyPending(ctx context.Context, employeeID, leaveTypeID string, year int, days float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET pending = pending + $1, updated_at = NOW()
		WHERE employee_id = $2 AND leave_type_id = $3 AND year = $4
		  AND allocated + carry_forward - used - pending >= $1
	`

	tag, err := q.Exec(ctx, query, days, employeeID, leaveTypeID, year)
	if err != nil {
		return fmt.Errorf("failed to apply pending leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrInsufficientBalance
	}
	return nil
}

func (r *leaveBalanceRepository) ApprovePending(ctx context.Context, employeeID, leaveTypeID string, year int, days float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET pending = pending - $1, used = used + $1, updated_at = NOW()
		WHERE employee_id = $2 AND leave_type_id = $3 AND year = $4
	`

	tag, err := q.Exec(ctx, query, days, employeeID, leaveTypeID, year)
	if err != nil {
		return fmt.Errorf("failed to approve pending leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}
	return nil
}

func (r *leaveBalanceRepository) ReleasePending(ctx context.Context, employeeID, leaveTypeID string, year int, days float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET pending = pending - $1, updated_at = NOW()
		WHERE employee_id = $2 AND leave_type_id = $3 AND year = $4
	`

	tag, err := q.Exec(ctx, query, days, employeeID, leaveTypeID, year)
	if err != nil {
		return fmt.Errorf("failed to release pending leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}
	return nil
}

func (r *leaveBalanceRepository) ReleaseUsed(ctx context.Context, employeeID, leaveTypeID string, year int, days float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET used = used - $1, updated_at = NOW()
		WHERE employee_id = $2 AND leave_type_id = $3 AND year = $4
	`

	tag, err := q.Exec(ctx, query, days, employeeID, leaveTypeID, year)
	if err != nil {
		return fmt.Errorf("failed to release used leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}
	return nil
}
