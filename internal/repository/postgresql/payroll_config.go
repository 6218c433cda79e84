package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hrmslite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

type payrollConfigRepository struct {
	db *database.DB
}

func NewPayrollConfigRepository(db *database.DB) payroll.ConfigRepository {
	return &payrollConfigRepository{db: db}
}

// Get returns the single active config row.
func (r *payrollConfigRepository) Get(ctx context.Context) (*payroll.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, pf_percentage, esi_percentage, esi_threshold, professional_tax_slabs,
			   payroll_processing_day, payment_day, financial_year_start, is_active,
			   created_at, updated_at
		FROM payroll_configs
		WHERE is_active = true
		ORDER BY created_at DESC
		LIMIT 1
	`

	var c payroll.Config
	err := q.QueryRow(ctx, query).Scan(
		&c.ID, &c.PFPercentage, &c.ESIPercentage, &c.ESIThreshold, &c.ProfessionalTaxSlabs,
		&c.PayrollProcessingDay, &c.PaymentDay, &c.FinancialYearStart, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payroll.ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to get payroll config: %w", err)
	}
	return &c, nil
}

func (r *payrollConfigRepository) Upsert(ctx context.Context, c *payroll.Config) error {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		query := `
			INSERT INTO payroll_configs (
				id, pf_percentage, esi_percentage, esi_threshold, professional_tax_slabs,
				payroll_processing_day, payment_day, financial_year_start, is_active,
				created_at, updated_at
			) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			RETURNING id, created_at, updated_at
		`
		err := q.QueryRow(ctx, query,
			c.PFPercentage, c.ESIPercentage, c.ESIThreshold, c.ProfessionalTaxSlabs,
			c.PayrollProcessingDay, c.PaymentDay, c.FinancialYearStart, c.IsActive,
		).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create payroll config: %w", err)
		}
		return nil
	}

	query := `
		UPDATE payroll_configs
		SET pf_percentage = $1, esi_percentage = $2, esi_threshold = $3, professional_tax_slabs = $4,
			payroll_processing_day = $5, payment_day = $6, financial_year_start = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`
	err := q.QueryRow(ctx, query,
		c.PFPercentage, c.ESIPercentage, c.ESIThreshold, c.ProfessionalTaxSlabs,
		c.PayrollProcessingDay, c.PaymentDay, c.FinancialYearStart, c.ID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrConfigNotFound
		}
		return fmt.Errorf("failed to update payroll config: %w", err)
	}
	return nil
}
