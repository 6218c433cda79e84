package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.status, a.punch_in, a.punch_out, a.working_hours,
	a.is_manual_correction, a.correction_reason, a.correction_requested_by,
	a.original_status, a.original_punch_in, a.original_punch_out,
	a.approval_status, a.approved_by, a.approval_date, a.approval_remarks,
	a.remarks, a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row) (*attendance.Attendance, error) {
	var att attendance.Attendance
	var originalStatus, correctionReason, correctionRequestedBy *string
	var approvedBy, approvalRemarks, remarks *string

	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.PunchIn, &att.PunchOut, &att.WorkingHours,
		&att.IsManualCorrection, &correctionReason, &correctionRequestedBy,
		&originalStatus, &att.OriginalPunchIn, &att.OriginalPunchOut,
		&att.ApprovalStatus, &approvedBy, &att.ApprovalDate, &approvalRemarks,
		&remarks, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if originalStatus != nil {
		att.OriginalStatus = attendance.Status(*originalStatus)
	}
	if correctionReason != nil {
		att.CorrectionReason = *correctionReason
	}
	if correctionRequestedBy != nil {
		att.CorrectionRequestedBy = *correctionRequestedBy
	}
	if approvedBy != nil {
		att.ApprovedBy = *approvedBy
	}
	if approvalRemarks != nil {
		att.ApprovalRemarks = *approvalRemarks
	}
	if remarks != nil {
		att.Remarks = *remarks
	}
	return &att, nil
}

func (r *attendanceRepository) Create(ctx context.Context, att *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (
			id, employee_id, date, status, punch_in, punch_out, working_hours,
			is_manual_correction, correction_reason, correction_requested_by,
			original_status, original_punch_in, original_punch_out,
			approval_status, approved_by, approval_date, approval_remarks,
			remarks, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID, att.Date, att.Status, att.PunchIn, att.PunchOut, att.WorkingHours,
		att.IsManualCorrection, nullIfEmpty(att.CorrectionReason), nullIfEmpty(att.CorrectionRequestedBy),
		nullIfEmpty(string(att.OriginalStatus)), att.OriginalPunchIn, att.OriginalPunchOut,
		att.ApprovalStatus, nullIfEmpty(att.ApprovedBy), att.ApprovalDate, nullIfEmpty(att.ApprovalRemarks),
		nullIfEmpty(att.Remarks),
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_attendance_employee_date") {
			return attendance.ErrAttendanceExists
		}
		return fmt.Errorf("failed to create attendance: %w", err)
	}
	return nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance a WHERE a.id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return att, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance a WHERE a.employee_id = $1 AND a.date = $2`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return att, nil
}

func (r *attendanceRepository) Update(ctx context.Context, att *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance SET
			status = $1, punch_in = $2, punch_out = $3, working_hours = $4,
			is_manual_correction = $5, correction_reason = $6, correction_requested_by = $7,
			original_status = $8, original_punch_in = $9, original_punch_out = $10,
			approval_status = $11, approved_by = $12, approval_date = $13, approval_remarks = $14,
			remarks = $15, updated_at = NOW()
		WHERE id = $16
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		att.Status, att.PunchIn, att.PunchOut, att.WorkingHours,
		att.IsManualCorrection, nullIfEmpty(att.CorrectionReason), nullIfEmpty(att.CorrectionRequestedBy),
		nullIfEmpty(string(att.OriginalStatus)), att.OriginalPunchIn, att.OriginalPunchOut,
		att.ApprovalStatus, nullIfEmpty(att.ApprovedBy), att.ApprovalDate, nullIfEmpty(att.ApprovalRemarks),
		nullIfEmpty(att.Remarks), att.ID,
	).Scan(&att.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	return nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

func (r *attendanceRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete attendance for employee: %w", err)
	}
	return nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Date != "" {
		conditions = append(conditions, fmt.Sprintf("a.date = $%d", argIdx))
		args = append(args, filter.Date)
		argIdx++
	}
	if filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, filter.StartDate)
		argIdx++
	}
	if filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, filter.EndDate)
		argIdx++
	}
	if filter.ApprovalStatus != "" {
		conditions = append(conditions, fmt.Sprintf("a.approval_status = $%d", argIdx))
		args = append(args, filter.ApprovalStatus)
		argIdx++
	}

	query := `
		SELECT ` + attendanceColumns + `, e.full_name, e.email
		FROM attendance a
		JOIN employees e ON e.employee_id = a.employee_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.date DESC, e.full_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	return collectAttendanceWithEmployee(rows)
}

func collectAttendanceWithEmployee(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		var originalStatus, correctionReason, correctionRequestedBy *string
		var approvedBy, approvalRemarks, remarks *string

		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.PunchIn, &att.PunchOut, &att.WorkingHours,
			&att.IsManualCorrection, &correctionReason, &correctionRequestedBy,
			&originalStatus, &att.OriginalPunchIn, &att.OriginalPunchOut,
			&att.ApprovalStatus, &approvedBy, &att.ApprovalDate, &approvalRemarks,
			&remarks, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.EmployeeEmail,
		); err != nil {
			return nil, err
		}

		if originalStatus != nil {
			att.OriginalStatus = attendance.Status(*originalStatus)
		}
		if correctionReason != nil {
			att.CorrectionReason = *correctionReason
		}
		if correctionRequestedBy != nil {
			att.CorrectionRequestedBy = *correctionRequestedBy
		}
		if approvedBy != nil {
			att.ApprovedBy = *approvedBy
		}
		if approvalRemarks != nil {
			att.ApprovalRemarks = *approvalRemarks
		}
		if remarks != nil {
			att.Remarks = *remarks
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]attendance.Attendance, error) {
	return r.List(ctx, attendance.AttendanceFilter{
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
	})
}

func (r *attendanceRepository) ListByDateRange(ctx context.Context, startDate, endDate string) ([]attendance.Attendance, error) {
	return r.List(ctx, attendance.AttendanceFilter{
		StartDate: startDate,
		EndDate:   endDate,
	})
}

func (r *attendanceRepository) ListPendingCorrections(ctx context.Context) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, e.full_name, e.email
		FROM attendance a
		JOIN employees e ON e.employee_id = a.employee_id
		WHERE a.approval_status = 'Pending'
		ORDER BY a.updated_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending corrections: %w", err)
	}
	defer rows.Close()

	return collectAttendanceWithEmployee(rows)
}

func (r *attendanceRepository) CountPendingCorrections(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE approval_status = 'Pending'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending corrections: %w", err)
	}
	return count, nil
}

func (r *attendanceRepository) CountByStatusAndRange(ctx context.Context, employeeID, startDate, endDate string, statuses []attendance.Status) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FROM attendance
		WHERE employee_id = $1 AND date >= $2 AND date <= $3 AND status = ANY($4)
	`

	strs := make([]string, len(statuses))
	for i, s := range statuses {
		strs[i] = string(s)
	}

	var count int
	err := q.QueryRow(ctx, query, employeeID, startDate, endDate, strs).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return count, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
