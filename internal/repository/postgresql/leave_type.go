package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hrmslite/hrms-backend-go/internal/domain/leave"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

type leaveTypeRepository struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepository{db: db}
}

func (r *leaveTypeRepository) Create(ctx context.Context, lt *leave.LeaveType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_types (
			id, name, code, annual_quota, is_paid, carry_forward, max_carry_forward, is_active,
			created_at, updated_at
		) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		lt.Name, lt.Code, lt.AnnualQuota, lt.IsPaid, lt.CarryForward, lt.MaxCarryForward, lt.IsActive,
	).Scan(&lt.ID, &lt.CreatedAt, &lt.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_leave_types_code") {
			return leave.ErrLeaveTypeCodeExists
		}
		return fmt.Errorf("failed to create leave type: %w", err)
	}
	return nil
}

func (r *leaveTypeRepository) GetByID(ctx context.Context, id string) (*leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, annual_quota, is_paid, carry_forward, max_carry_forward, is_active,
			   created_at, updated_at
		FROM leave_types
		WHERE id = $1
	`

	var lt leave.LeaveType
	err := q.QueryRow(ctx, query, id).Scan(
		&lt.ID, &lt.Name, &lt.Code, &lt.AnnualQuota, &lt.IsPaid, &lt.CarryForward, &lt.MaxCarryForward, &lt.IsActive,
		&lt.CreatedAt, &lt.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, leave.ErrLeaveTypeNotFound
		}
		return nil, fmt.Errorf("failed to get leave type: %w", err)
	}
	return &lt, nil
}

func (r *leaveTypeRepository) GetByCode(ctx context.Context, code string) (*leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, annual_quota, is_paid, carry_forward, max_carry_forward, is_active,
			   created_at, updated_at
		FROM leave_types
		WHERE code = $1
	`

	var lt leave.LeaveType
	err := q.QueryRow(ctx, query, code).Scan(
		&lt.ID, &lt.Name, &lt.Code, &lt.AnnualQuota, &lt.IsPaid, &lt.CarryForward, &lt.MaxCarryForward, &lt.IsActive,
		&lt.CreatedAt, &lt.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, leave.ErrLeaveTypeNotFound
		}
		return nil, fmt.Errorf("failed to get leave type: %w", err)
	}
	return &lt, nil
}

func (r *leaveTypeRepository) List(ctx context.Context, activeOnly bool) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, annual_quota, is_paid, carry_forward, max_carry_forward, is_active,
			   created_at, updated_at
		FROM leave_types
	`
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	defer rows.Close()

	var leaveTypes []leave.LeaveType
	for rows.Next() {
		var lt leave.LeaveType
		if err := rows.Scan(
			&lt.ID, &lt.Name, &lt.Code, &lt.AnnualQuota, &lt.IsPaid, &lt.CarryForward, &lt.MaxCarryForward, &lt.IsActive,
			&lt.CreatedAt, &lt.UpdatedAt,
		); err != nil {
			return nil, err
		}
		leaveTypes = append(leaveTypes, lt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return leaveTypes, nil
}

func (r *leaveTypeRepository) Update(ctx context.Context, lt *leave.LeaveType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_types
		SET name = $1, annual_quota = $2, is_paid = $3, carry_forward = $4,
			max_carry_forward = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		lt.Name, lt.AnnualQuota, lt.IsPaid, lt.CarryForward, lt.MaxCarryForward, lt.IsActive, lt.ID,
	).Scan(&lt.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrLeaveTypeNotFound
		}
		return fmt.Errorf("failed to update leave type: %w", err)
	}
	return nil
}

func (r *leaveTypeRepository) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_types`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count leave types: %w", err)
	}
	return count, nil
}
