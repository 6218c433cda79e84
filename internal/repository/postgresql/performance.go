package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hrmslite/hrms-backend-go/internal/domain/performance"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

type goalRepository struct {
	db *database.DB
}

func NewGoalRepository(db *database.DB) performance.GoalRepository {
	return &goalRepository{db: db}
}

const goalColumns = `
	g.id, g.employee_id, g.title, g.description, g.category, g.type,
	g.target_value, g.current_value, g.weightage, g.start_date, g.end_date,
	g.status, g.progress, g.assigned_by, g.created_at, g.updated_at
`

func scanGoal(row pgx.Row, g *performance.Goal, extra ...interface{}) error {
	var description, targetValue, currentValue, assignedBy *string

	dest := []interface{}{
		&g.ID, &g.EmployeeID, &g.Title, &description, &g.Category, &g.Type,
		&targetValue, &currentValue, &g.Weightage, &g.StartDate, &g.EndDate,
		&g.Status, &g.Progress, &assignedBy, &g.CreatedAt, &g.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return err
	}
	if description != nil {
		g.Description = *description
	}
	if targetValue != nil {
		g.TargetValue = *targetValue
	}
	if currentValue != nil {
		g.CurrentValue = *currentValue
	}
	if assignedBy != nil {
		g.AssignedBy = *assignedBy
	}
	return nil
}

func (r *goalRepository) Create(ctx context.Context, g *performance.Goal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO goals (
			id, employee_id, title, description, category, type,
			target_value, weightage, start_date, end_date, status, progress, assigned_by,
			created_at, updated_at
		) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		g.EmployeeID, g.Title, nullIfEmpty(g.Description), g.Category, g.Type,
		nullIfEmpty(g.TargetValue), g.Weightage, g.StartDate, g.EndDate,
		g.Status, g.Progress, nullIfEmpty(g.AssignedBy),
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

func (r *goalRepository) GetByID(ctx context.Context, id string) (*performance.Goal, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + goalColumns + ` FROM goals g WHERE g.id = $1`

	var g performance.Goal
	if err := scanGoal(q.QueryRow(ctx, query, id), &g); err != nil {
		if err == pgx.ErrNoRows {
			return nil, performance.ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return &g, nil
}

func (r *goalRepository) ListByEmployee(ctx context.Context, employeeID string) ([]performance.Goal, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + goalColumns + ` FROM goals g WHERE g.employee_id = $1 ORDER BY g.created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []performance.Goal
	for rows.Next() {
		var g performance.Goal
		if err := scanGoal(rows, &g); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *goalRepository) Update(ctx context.Context, g *performance.Goal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE goals
		SET current_value = $1, status = $2, progress = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		nullIfEmpty(g.CurrentValue), g.Status, g.Progress, g.ID,
	).Scan(&g.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.ErrGoalNotFound
		}
		return fmt.Errorf("failed to update goal: %w", err)
	}
	return nil
}

func (r *goalRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrGoalNotFound
	}
	return nil
}

type reviewRepository struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) performance.ReviewRepository {
	return &reviewRepository{db: db}
}

const reviewColumns = `
	r.id, r.employee_id, r.period_start, r.period_end, r.review_type,
	r.self_achievements, r.self_challenges, r.self_areas_of_improvement, r.self_comments, r.self_submitted_on,
	r.mgr_strengths, r.mgr_areas_of_improvement, r.mgr_recommendations, r.mgr_comments, r.mgr_reviewed_by, r.mgr_reviewed_on,
	r.rating_technical, r.rating_communication, r.rating_teamwork, r.rating_leadership,
	r.rating_problem_solving, r.rating_initiative, r.rating_punctuality, r.rating_quality,
	r.overall_rating, r.performance_band, r.status,
	r.employee_acknowledged, r.acknowledged_on, r.employee_comments,
	r.created_at, r.updated_at
`

func scanReview(row pgx.Row, rv *performance.Review, extra ...interface{}) error {
	var mgrReviewedBy *string

	dest := []interface{}{
		&rv.ID, &rv.EmployeeID, &rv.PeriodStart, &rv.PeriodEnd, &rv.ReviewType,
		&rv.SelfReview.Achievements, &rv.SelfReview.Challenges, &rv.SelfReview.AreasOfImprovement,
		&rv.SelfReview.Comments, &rv.SelfReview.SubmittedOn,
		&rv.ManagerReview.Strengths, &rv.ManagerReview.AreasOfImprovement, &rv.ManagerReview.Recommendations,
		&rv.ManagerReview.Comments, &mgrReviewedBy, &rv.ManagerReview.ReviewedOn,
		&rv.Ratings.Technical, &rv.Ratings.Communication, &rv.Ratings.Teamwork, &rv.Ratings.Leadership,
		&rv.Ratings.ProblemSolving, &rv.Ratings.Initiative, &rv.Ratings.Punctuality, &rv.Ratings.Quality,
		&rv.OverallRating, &rv.PerformanceBand, &rv.Status,
		&rv.EmployeeAcknowledged, &rv.AcknowledgedOn, &rv.EmployeeComments,
		&rv.CreatedAt, &rv.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return err
	}
	if mgrReviewedBy != nil {
		rv.ManagerReview.ReviewedBy = *mgrReviewedBy
	}
	return nil
}

func (r *reviewRepository) Create(ctx context.Context, rv *performance.Review) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (
			id, employee_id, period_start, period_end, review_type,
			overall_rating, performance_band, status, created_at, updated_at
		) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rv.EmployeeID, rv.PeriodStart, rv.PeriodEnd, rv.ReviewType,
		rv.OverallRating, rv.PerformanceBand, rv.Status,
	).Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create performance review: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + reviewColumns + ` FROM performance_reviews r WHERE r.id = $1`

	var rv performance.Review
	if err := scanReview(q.QueryRow(ctx, query, id), &rv); err != nil {
		if err == pgx.ErrNoRows {
			return nil, performance.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get performance review: %w", err)
	}
	return &rv, nil
}

func (r *reviewRepository) ListByEmployee(ctx context.Context, employeeID string) ([]performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + reviewColumns + ` FROM performance_reviews r WHERE r.employee_id = $1 ORDER BY r.period_end DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	var reviews []performance.Review
	for rows.Next() {
		var rv performance.Review
		if err := scanReview(rows, &rv); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) Update(ctx context.Context, rv *performance.Review) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE performance_reviews SET
			self_achievements = $1, self_challenges = $2, self_areas_of_improvement = $3,
			self_comments = $4, self_submitted_on = $5,
			mgr_strengths = $6, mgr_areas_of_improvement = $7, mgr_recommendations = $8,
			mgr_comments = $9, mgr_reviewed_by = $10, mgr_reviewed_on = $11,
			rating_technical = $12, rating_communication = $13, rating_teamwork = $14,
			rating_leadership = $15, rating_problem_solving = $16, rating_initiative = $17,
			rating_punctuality = $18, rating_quality = $19,
			overall_rating = $20, performance_band = $21, status = $22,
			employee_acknowledged = $23, acknowledged_on = $24, employee_comments = $25,
			updated_at = NOW()
		WHERE id = $26
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		rv.SelfReview.Achievements, rv.SelfReview.Challenges, rv.SelfReview.AreasOfImprovement,
		rv.SelfReview.Comments, rv.SelfReview.SubmittedOn,
		rv.ManagerReview.Strengths, rv.ManagerReview.AreasOfImprovement, rv.ManagerReview.Recommendations,
		rv.ManagerReview.Comments, nullIfEmpty(rv.ManagerReview.ReviewedBy), rv.ManagerReview.ReviewedOn,
		rv.Ratings.Technical, rv.Ratings.Communication, rv.Ratings.Teamwork, rv.Ratings.Leadership,
		rv.Ratings.ProblemSolving, rv.Ratings.Initiative, rv.Ratings.Punctuality, rv.Ratings.Quality,
		rv.OverallRating, rv.PerformanceBand, rv.Status,
		rv.EmployeeAcknowledged, rv.AcknowledgedOn, rv.EmployeeComments,
		rv.ID,
	).Scan(&rv.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.ErrReviewNotFound
		}
		return fmt.Errorf("failed to update performance review: %w", err)
	}
	return nil
}

type promotionRepository struct {
	db *database.DB
}

func NewPromotionRepository(db *database.DB) performance.PromotionRepository {
	return &promotionRepository{db: db}
}

const promotionColumns = `
	p.id, p.employee_id, p.type, p.previous_designation, p.new_designation,
	p.previous_salary, p.new_salary, p.increment_percentage, p.increment_amount,
	p.effective_date, p.reason, p.approved_by, p.approved_on, p.status, p.remarks,
	p.created_at, p.updated_at
`

func scanPromotion(row pgx.Row, p *performance.Promotion, extra ...interface{}) error {
	var prevDesignation, newDesignation, reason, approvedBy, remarks *string

	dest := []interface{}{
		&p.ID, &p.EmployeeID, &p.Type, &prevDesignation, &newDesignation,
		&p.PreviousSalary, &p.NewSalary, &p.IncrementPercentage, &p.IncrementAmount,
		&p.EffectiveDate, &reason, &approvedBy, &p.ApprovedOn, &p.Status, &remarks,
		&p.CreatedAt, &p.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return err
	}
	if prevDesignation != nil {
		p.PreviousDesignation = *prevDesignation
	}
	if newDesignation != nil {
		p.NewDesignation = *newDesignation
	}
	if reason != nil {
		p.Reason = *reason
	}
	if approvedBy != nil {
		p.ApprovedBy = *approvedBy
	}
	if remarks != nil {
		p.Remarks = *remarks
	}
	return nil
}

func (r *promotionRepository) Create(ctx context.Context, p *performance.Promotion) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO promotions (
			id, employee_id, type, previous_designation, new_designation,
			previous_salary, new_salary, increment_percentage, increment_amount,
			effective_date, reason, status, remarks, created_at, updated_at
		) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.EmployeeID, p.Type, nullIfEmpty(p.PreviousDesignation), nullIfEmpty(p.NewDesignation),
		p.PreviousSalary, p.NewSalary, p.IncrementPercentage, p.IncrementAmount,
		p.EffectiveDate, nullIfEmpty(p.Reason), p.Status, nullIfEmpty(p.Remarks),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create promotion: %w", err)
	}
	return nil
}

func (r *promotionRepository) GetByID(ctx context.Context, id string) (*performance.Promotion, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + promotionColumns + ` FROM promotions p WHERE p.id = $1`

	var p performance.Promotion
	if err := scanPromotion(q.QueryRow(ctx, query, id), &p); err != nil {
		if err == pgx.ErrNoRows {
			return nil, performance.ErrPromotionNotFound
		}
		return nil, fmt.Errorf("failed to get promotion: %w", err)
	}
	return &p, nil
}

func (r *promotionRepository) List(ctx context.Context, filter performance.PromotionFilter) ([]performance.Promotion, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("p.type = $%d", argIdx))
		args = append(args, filter.Type)
		argIdx++
	}

	query := `SELECT ` + promotionColumns + ` FROM promotions p`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	defer rows.Close()

	var promotions []performance.Promotion
	for rows.Next() {
		var p performance.Promotion
		if err := scanPromotion(rows, &p); err != nil {
			return nil, err
		}
		promotions = append(promotions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *promotionRepository) Update(ctx context.Context, p *performance.Promotion) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE promotions
		SET approved_by = $1, approved_on = $2, status = $3, remarks = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		nullIfEmpty(p.ApprovedBy), p.ApprovedOn, p.Status, nullIfEmpty(p.Remarks), p.ID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.ErrPromotionNotFound
		}
		return fmt.Errorf("failed to update promotion: %w", err)
	}
	return nil
}
