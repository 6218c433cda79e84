package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hrmslite/hrms-backend-go/internal/domain/leave"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date,
	lr.is_half_day, lr.days, lr.reason, lr.status,
	lr.action_by, lr.action_date, lr.action_remarks,
	e.full_name, lt.name, lt.code, lt.is_paid,
	lr.created_at, lr.updated_at
`

const leaveRequestJoins = `
	FROM leave_requests lr
	JOIN employees e ON e.employee_id = lr.employee_id
	JOIN leave_types lt ON lt.id = lr.leave_type_id
`

func scanLeaveRequest(row pgx.Row) (*leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	var actionBy, actionRemarks *string

	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveTypeID, &req.StartDate, &req.EndDate,
		&req.IsHalfDay, &req.Days, &req.Reason, &req.Status,
		&actionBy, &req.ActionDate, &actionRemarks,
		&req.EmployeeName, &req.LeaveTypeName, &req.LeaveTypeCode, &req.IsPaid,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if actionBy != nil {
		req.ActionBy = *actionBy
	}
	if actionRemarks != nil {
		req.ActionRemarks = *actionRemarks
	}
	return &req, nil
}

func (r *leaveRequestRepository) Create(ctx context.Context, req *leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type_id, start_date, end_date,
			is_half_day, days, reason, status, created_at, updated_at
		) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.LeaveTypeID, req.StartDate, req.EndDate,
		req.IsHalfDay, req.Days, req.Reason, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create leave request: %w", err)
	}
	return nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + ` WHERE lr.id = $1`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, leave.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}
	return req, nil
}

func (r *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("lr.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.LeaveTypeID != "" {
		conditions = append(conditions, fmt.Sprintf("lr.leave_type_id = $%d", argIdx))
		args = append(args, filter.LeaveTypeID)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("lr.end_date >= $%d", argIdx))
		args = append(args, filter.StartDate)
		argIdx++
	}
	if filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("lr.start_date <= $%d", argIdx))
		args = append(args, filter.EndDate)
		argIdx++
	}

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY lr.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *leaveRequestRepository) Update(ctx context.Context, req *leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, action_by = $2, action_date = $3, action_remarks = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		req.Status, nullIfEmpty(req.ActionBy), req.ActionDate, nullIfEmpty(req.ActionRemarks), req.ID,
	).Scan(&req.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrRequestNotFound
		}
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	return nil
}

func (r *leaveRequestRepository) HasOverlapping(ctx context.Context, employeeID, startDate, endDate string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('Pending', 'Approved')
			  AND start_date <= $3 AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, startDate, endDate).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping leave: %w", err)
	}
	return exists, nil
}

func (r *leaveRequestRepository) CountByStatus(ctx context.Context, status leave.RequestStatus) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count leave requests: %w", err)
	}
	return count, nil
}

func (r *leaveRequestRepository) CountApprovedInRange(ctx context.Context, startDate, endDate string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FROM leave_requests
		WHERE status = 'Approved' AND start_date <= $2 AND end_date >= $1
	`

	var count int64
	if err := q.QueryRow(ctx, query, startDate, endDate).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count approved leave requests: %w", err)
	}
	return count, nil
}

func (r *leaveRequestRepository) CountOnLeave(ctx context.Context, date string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT employee_id) FROM leave_requests
		WHERE status = 'Approved' AND start_date <= $1 AND end_date >= $1
	`

	var count int64
	if err := q.QueryRow(ctx, query, date).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees on leave: %w", err)
	}
	return count, nil
}

// ApprovedPaidDays clips each approved paid request to the window so a leave
// spanning month boundaries only counts the days inside it.
func (r *leaveRequestRepository) ApprovedPaidDays(ctx context.Context, employeeID, startDate, endDate string) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(
			CASE WHEN lr.is_half_day THEN 0.5
			ELSE LEAST(lr.end_date, $3::date) - GREATEST(lr.start_date, $2::date) + 1
			END
		), 0)
		FROM leave_requests lr
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE lr.employee_id = $1 AND lr.status = 'Approved' AND lt.is_paid = true
		  AND lr.start_date <= $3 AND lr.end_date >= $2
	`

	var days float64
	if err := q.QueryRow(ctx, query, employeeID, startDate, endDate).Scan(&days); err != nil {
		return 0, fmt.Errorf("failed to sum approved paid leave days: %w", err)
	}
	return days, nil
}

func (r *leaveRequestRepository) ApprovedUnpaidDays(ctx context.Context, employeeID, startDate, endDate string) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(
			CASE WHEN lr.is_half_day THEN 0.5
			ELSE LEAST(lr.end_date, $3::date) - GREATEST(lr.start_date, $2::date) + 1
			END
		), 0)
		FROM leave_requests lr
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE lr.employee_id = $1 AND lr.status = 'Approved' AND lt.is_paid = false
		  AND lr.start_date <= $3 AND lr.end_date >= $2
	`

	var days float64
	if err := q.QueryRow(ctx, query, employeeID, startDate, endDate).Scan(&days); err != nil {
		return 0, fmt.Errorf("failed to sum approved unpaid leave days: %w", err)
	}
	return days, nil
}
