package performance

import "context"

type GoalRepository interface {
	Create(ctx context.Context, g *Goal) error
	GetByID(ctx context.Context, id string) (*Goal, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Goal, error)
	Update(ctx context.Context, g *Goal) error
	Delete(ctx context.Context, id string) error
}

type ReviewRepository interface {
	Create(ctx context.Context, r *Review) error
	GetByID(ctx context.Context, id string) (*Review, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Review, error)
	Update(ctx context.Context, r *Review) error
}

type PromotionRepository interface {
	Create(ctx context.Context, p *Promotion) error
	GetByID(ctx context.Context, id string) (*Promotion, error)
	List(ctx context.Context, filter PromotionFilter) ([]Promotion, error)
	Update(ctx context.Context, p *Promotion) error
}

type PerformanceService interface {
	CreateGoal(ctx context.Context, req *CreateGoalRequest) (*GoalResponse, error)
	UpdateGoalProgress(ctx context.Context, req *UpdateGoalProgressRequest) (*GoalResponse, error)
	ListGoals(ctx context.Context, employeeID string) ([]GoalResponse, error)
	DeleteGoal(ctx context.Context, id string) error

	CreateReview(ctx context.Context, req *CreateReviewRequest) (*ReviewResponse, error)
	SubmitSelfReview(ctx context.Context, req *SubmitSelfReviewRequest) (*ReviewResponse, error)
	SubmitManagerReview(ctx context.Context, req *SubmitManagerReviewRequest) (*ReviewResponse, error)
	AcknowledgeReview(ctx context.Context, req *AcknowledgeReviewRequest) (*ReviewResponse, error)
	ListReviews(ctx context.Context, employeeID string) ([]ReviewResponse, error)

	CreatePromotion(ctx context.Context, req *CreatePromotionRequest) (*PromotionResponse, error)
	ListPromotions(ctx context.Context, filter PromotionFilter) ([]PromotionResponse, error)
	ApprovePromotion(ctx context.Context, req *ApprovePromotionRequest) (*PromotionResponse, error)
	ImplementPromotion(ctx context.Context, id string) (*PromotionResponse, error)
}
