package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/domain/performance"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
	"github.com/hrmslite/hrms-backend-go/internal/repository/postgresql"
)

type PerformanceServiceImpl struct {
	db *database.DB
	performance.GoalRepository
	performance.ReviewRepository
	performance.PromotionRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewPerformanceService(
	db *database.DB,
	goalRepo performance.GoalRepository,
	reviewRepo performance.ReviewRepository,
	promotionRepo performance.PromotionRepository,
	employeeRepo employee.EmployeeRepository,
) *PerformanceServiceImpl {
	return &PerformanceServiceImpl{
		db:                  db,
		GoalRepository:      goalRepo,
		ReviewRepository:    reviewRepo,
		PromotionRepository: promotionRepo,
		EmployeeRepository:  employeeRepo,
		now:                 time.Now,
	}
}

func goalToResponse(g *performance.Goal) *performance.GoalResponse {
	return &performance.GoalResponse{
		ID:           g.ID,
		EmployeeID:   g.EmployeeID,
		EmployeeName: g.EmployeeName,
		Title:        g.Title,
		Description:  g.Description,
		Category:     g.Category,
		Type:         g.Type,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Weightage:    g.Weightage,
		StartDate:    g.StartDate.Format("2006-01-02"),
		EndDate:      g.EndDate.Format("2006-01-02"),
		Status:       string(g.Status),
		Progress:     g.Progress,
		AssignedBy:   g.AssignedBy,
	}
}

func reviewToResponse(r *performance.Review) *performance.ReviewResponse {
	resp := &performance.ReviewResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		PeriodStart:  r.PeriodStart.Format("2006-01-02"),
		PeriodEnd:    r.PeriodEnd.Format("2006-01-02"),
		ReviewType:   r.ReviewType,
		Ratings: performance.RatingsInput{
			Technical:      r.Ratings.Technical,
			Communication:  r.Ratings.Communication,
			Teamwork:       r.Ratings.Teamwork,
			Leadership:     r.Ratings.Leadership,
			ProblemSolving: r.Ratings.ProblemSolving,
			Initiative:     r.Ratings.Initiative,
			Punctuality:    r.Ratings.Punctuality,
			Quality:        r.Ratings.Quality,
		},
		OverallRating:        r.OverallRating,
		PerformanceBand:      string(r.PerformanceBand),
		Status:               string(r.Status),
		EmployeeAcknowledged: r.EmployeeAcknowledged,
		EmployeeComments:     r.EmployeeComments,
	}
	if r.AcknowledgedOn != nil {
		resp.AcknowledgedOn = r.AcknowledgedOn.Format("2006-01-02 15:04:05")
	}
	return resp
}

func promotionToResponse(p *performance.Promotion) *performance.PromotionResponse {
	resp := &performance.PromotionResponse{
		ID:                  p.ID,
		EmployeeID:          p.EmployeeID,
		EmployeeName:        p.EmployeeName,
		Type:                p.Type,
		PreviousDesignation: p.PreviousDesignation,
		NewDesignation:      p.NewDesignation,
		PreviousSalary:      p.PreviousSalary,
		NewSalary:           p.NewSalary,
		IncrementPercentage: p.IncrementPercentage,
		IncrementAmount:     p.IncrementAmount,
		EffectiveDate:       p.EffectiveDate.Format("2006-01-02"),
		Reason:              p.Reason,
		ApprovedBy:          p.ApprovedBy,
		Status:              string(p.Status),
		Remarks:             p.Remarks,
	}
	if p.ApprovedOn != nil {
		resp.ApprovedOn = p.ApprovedOn.Format("2006-01-02 15:04:05")
	}
	return resp
}

func (s *PerformanceServiceImpl) CreateGoal(ctx context.Context, req *performance.CreateGoalRequest) (*performance.GoalResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse end date: %w", err)
	}

	goal := &performance.Goal{
		EmployeeID:  req.EmployeeID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		TargetValue: req.TargetValue,
		Weightage:   req.Weightage,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      performance.GoalNotStarted,
		AssignedBy:  req.AssignedBy,
	}
	if goal.Category == "" {
		goal.Category = "Individual"
	}
	if goal.Type == "" {
		goal.Type = "KPI"
	}

	if err := s.GoalRepository.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goalToResponse(goal), nil
}

func (s *PerformanceServiceImpl) UpdateGoalProgress(ctx context.Context, req *performance.UpdateGoalProgressRequest) (*performance.GoalResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	goal, err := s.GoalRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Progress != nil {
		goal.Progress = *req.Progress
		switch {
		case goal.Progress >= 100:
			goal.Progress = 100
			goal.Status = performance.GoalCompleted
		case goal.Progress > 0 && goal.Status == performance.GoalNotStarted:
			goal.Status = performance.GoalInProgress
		}
	}
	if req.CurrentValue != nil {
		goal.CurrentValue = *req.CurrentValue
	}
	if req.Status != nil {
		goal.Status = performance.GoalStatus(*req.Status)
	}

	if err := s.GoalRepository.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goalToResponse(goal), nil
}

func (s *PerformanceServiceImpl) ListGoals(ctx context.Context, employeeID string) ([]performance.GoalResponse, error) {
	goals, err := s.GoalRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]performance.GoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, *goalToResponse(&goals[i]))
	}
	return responses, nil
}

func (s *PerformanceServiceImpl) DeleteGoal(ctx context.Context, id string) error {
	if _, err := s.GoalRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.GoalRepository.Delete(ctx, id)
}

func (s *PerformanceServiceImpl) CreateReview(ctx context.Context, req *performance.CreateReviewRequest) (*performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	periodStart, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		return nil, fmt.Errorf("failed to parse period start: %w", err)
	}
	periodEnd, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse period end: %w", err)
	}

	review := &performance.Review{
		EmployeeID:      req.EmployeeID,
		PeriodStart:     periodStart,
		PeriodEnd:       periodEnd,
		ReviewType:      req.ReviewType,
		PerformanceBand: performance.BandNotRated,
		Status:          performance.ReviewPendingSelf,
	}
	if err := s.ReviewRepository.Create(ctx, review); err != nil {
		return nil, err
	}
	return reviewToResponse(review), nil
}

func (s *PerformanceServiceImpl) SubmitSelfReview(ctx context.Context, req *performance.SubmitSelfReviewRequest) (*performance.ReviewResponse, error) {
	review, err := s.ReviewRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	review.SelfReview = performance.SelfReview{
		Achievements:       req.Achievements,
		Challenges:         req.Challenges,
		AreasOfImprovement: req.AreasOfImprovement,
		Comments:           req.Comments,
		SubmittedOn:        &now,
	}
	review.Status = performance.ReviewPendingManager

	if err := s.ReviewRepository.Update(ctx, review); err != nil {
		return nil, err
	}
	return reviewToResponse(review), nil
}

func (s *PerformanceServiceImpl) SubmitManagerReview(ctx context.Context, req *performance.SubmitManagerReviewRequest) (*performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	review, err := s.ReviewRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	review.ManagerReview = performance.ManagerReview{
		Strengths:          req.Strengths,
		AreasOfImprovement: req.AreasOfImprovement,
		Recommendations:    req.Recommendations,
		Comments:           req.Comments,
		ReviewedBy:         req.ReviewedBy,
		ReviewedOn:         &now,
	}
	review.Ratings = req.Ratings.ToRatings()
	review.Finalize()
	review.Status = performance.ReviewCompleted

	if err := s.ReviewRepository.Update(ctx, review); err != nil {
		return nil, err
	}
	return reviewToResponse(review), nil
}

func (s *PerformanceServiceImpl) AcknowledgeReview(ctx context.Context, req *performance.AcknowledgeReviewRequest) (*performance.ReviewResponse, error) {
	review, err := s.ReviewRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	review.EmployeeAcknowledged = true
	review.AcknowledgedOn = &now
	review.EmployeeComments = req.Comments
	review.Status = performance.ReviewAcknowledged

	if err := s.ReviewRepository.Update(ctx, review); err != nil {
		return nil, err
	}
	return reviewToResponse(review), nil
}

func (s *PerformanceServiceImpl) ListReviews(ctx context.Context, employeeID string) ([]performance.ReviewResponse, error) {
	reviews, err := s.ReviewRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]performance.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, *reviewToResponse(&reviews[i]))
	}
	return responses, nil
}

func (s *PerformanceServiceImpl) CreatePromotion(ctx context.Context, req *performance.CreatePromotionRequest) (*performance.PromotionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse effective date: %w", err)
	}

	promo := &performance.Promotion{
		EmployeeID:          req.EmployeeID,
		Type:                req.Type,
		PreviousDesignation: req.PreviousDesignation,
		NewDesignation:      req.NewDesignation,
		PreviousSalary:      req.PreviousSalary,
		NewSalary:           req.NewSalary,
		IncrementPercentage: req.IncrementPercentage,
		IncrementAmount:     req.IncrementAmount,
		EffectiveDate:       effectiveDate,
		Reason:              req.Reason,
		Status:              performance.PromotionPending,
		Remarks:             req.Remarks,
	}
	if promo.PreviousDesignation == "" {
		promo.PreviousDesignation = emp.Designation
	}

	if err := s.PromotionRepository.Create(ctx, promo); err != nil {
		return nil, err
	}
	return promotionToResponse(promo), nil
}

func (s *PerformanceServiceImpl) ListPromotions(ctx context.Context, filter performance.PromotionFilter) ([]performance.PromotionResponse, error) {
	promotions, err := s.PromotionRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]performance.PromotionResponse, 0, len(promotions))
	for i := range promotions {
		responses = append(responses, *promotionToResponse(&promotions[i]))
	}
	return responses, nil
}

func (s *PerformanceServiceImpl) ApprovePromotion(ctx context.Context, req *performance.ApprovePromotionRequest) (*performance.PromotionResponse, error) {
	promo, err := s.PromotionRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	promo.Status = performance.PromotionApproved
	promo.ApprovedBy = req.ApprovedBy
	if promo.ApprovedBy == "" {
		promo.ApprovedBy = "HR Admin"
	}
	promo.ApprovedOn = &now

	if err := s.PromotionRepository.Update(ctx, promo); err != nil {
		return nil, err
	}
	return promotionToResponse(promo), nil
}

// ImplementPromotion applies an approved promotion to the employee record
// and marks it implemented. Both writes happen in one transaction.
func (s *PerformanceServiceImpl) ImplementPromotion(ctx context.Context, id string) (*performance.PromotionResponse, error) {
	promo, err := s.PromotionRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if promo.Status != performance.PromotionApproved {
		return nil, performance.ErrPromotionNotApproved
	}

	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, promo.EmployeeID)
	if err != nil {
		return nil, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if promo.NewDesignation != "" {
			emp.Designation = promo.NewDesignation
			if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
				return err
			}
		}
		promo.Status = performance.PromotionImplemented
		return s.PromotionRepository.Update(ctx, promo)
	})
	if err != nil {
		return nil, err
	}
	return promotionToResponse(promo), nil
}
