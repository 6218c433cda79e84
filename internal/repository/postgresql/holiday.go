package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hrmslite/hrms-backend-go/internal/domain/leave"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) leave.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) Create(ctx context.Context, h *leave.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, name, date, type, description, is_optional, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, h.Name, h.Date, h.Type, h.Description, h.IsOptional, h.IsActive).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_holidays_date") {
			return leave.ErrHolidayExists
		}
		return fmt.Errorf("failed to create holiday: %w", err)
	}
	return nil
}

func (r *holidayRepository) GetByID(ctx context.Context, id string) (*leave.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, date, type, description, is_optional, is_active, created_at, updated_at FROM holidays WHERE id = $1`

	var h leave.Holiday
	err := q.QueryRow(ctx, query, id).Scan(&h.ID, &h.Name, &h.Date, &h.Type, &h.Description, &h.IsOptional, &h.IsActive, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, leave.ErrHolidayNotFound
		}
		return nil, fmt.Errorf("failed to get holiday: %w", err)
	}
	return &h, nil
}

func (r *holidayRepository) GetByDate(ctx context.Context, date string) (*leave.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, date, type, description, is_optional, is_active, created_at, updated_at FROM holidays WHERE date = $1`

	var h leave.Holiday
	err := q.QueryRow(ctx, query, date).Scan(&h.ID, &h.Name, &h.Date, &h.Type, &h.Description, &h.IsOptional, &h.IsActive, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, leave.ErrHolidayNotFound
		}
		return nil, fmt.Errorf("failed to get holiday: %w", err)
	}
	return &h, nil
}

func (r *holidayRepository) List(ctx context.Context, year int) ([]leave.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, type, description, is_optional, is_active, created_at, updated_at
		FROM holidays
		WHERE EXTRACT(YEAR FROM date) = $1 AND is_active = TRUE
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

func (r *holidayRepository) ListInRange(ctx context.Context, startDate, endDate string) ([]leave.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, type, description, is_optional, is_active, created_at, updated_at
		FROM holidays
		WHERE date >= $1 AND date <= $2 AND is_active = TRUE
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

func (r *holidayRepository) Update(ctx context.Context, h *leave.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holidays
		SET name = $2, date = $3, type = $4, description = $5, is_optional = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, h.ID, h.Name, h.Date, h.Type, h.Description, h.IsOptional, h.IsActive).Scan(&h.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to update holiday: %w", err)
	}
	return nil
}

func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrHolidayNotFound
	}
	return nil
}

func (r *holidayRepository) ListUpcoming(ctx context.Context, from string, limit int) ([]leave.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, type, description, is_optional, is_active, created_at, updated_at
		FROM holidays
		WHERE date >= $1
		ORDER BY date
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, from, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming holidays: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

func collectHolidays(rows pgx.Rows) ([]leave.Holiday, error) {
	var holidays []leave.Holiday
	for rows.Next() {
		var h leave.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.Type, &h.Description, &h.IsOptional, &h.IsActive, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return holidays, nil
}
