package performance

import (
	"github.com/shopspring/decimal"

	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

type CreateGoalRequest struct {
	EmployeeID  string `json:"employeeId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	TargetValue string `json:"targetValue"`
	Weightage   int    `json:"weightage"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	AssignedBy  string `json:"assignedBy"`
}

func (r *CreateGoalRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if r.Weightage < 0 || r.Weightage > 100 {
		errs = append(errs, validator.ValidationError{Field: "weightage", Message: "must be between 0 and 100"})
	}
	if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !validator.IsValidDate(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateGoalProgressRequest struct {
	ID           string  `json:"-"`
	Progress     *int    `json:"progress,omitempty"`
	Status       *string `json:"status,omitempty"`
	CurrentValue *string `json:"currentValue,omitempty"`
}

func (r *UpdateGoalProgressRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Progress != nil && (*r.Progress < 0 || *r.Progress > 100) {
		errs = append(errs, validator.ValidationError{Field: "progress", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GoalResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category"`
	Type         string `json:"type"`
	TargetValue  string `json:"targetValue,omitempty"`
	CurrentValue string `json:"currentValue,omitempty"`
	Weightage    int    `json:"weightage"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Status       string `json:"status"`
	Progress     int    `json:"progress"`
	AssignedBy   string `json:"assignedBy,omitempty"`
}

type RatingsInput struct {
	Technical      int `json:"technical"`
	Communication  int `json:"communication"`
	Teamwork       int `json:"teamwork"`
	Leadership     int `json:"leadership"`
	ProblemSolving int `json:"problemSolving"`
	Initiative     int `json:"initiative"`
	Punctuality    int `json:"punctuality"`
	Quality        int `json:"quality"`
}

func (r RatingsInput) ToRatings() Ratings {
	return Ratings(r)
}

func (r RatingsInput) validate() bool {
	for _, v := range []int{
		r.Technical, r.Communication, r.Teamwork, r.Leadership,
		r.ProblemSolving, r.Initiative, r.Punctuality, r.Quality,
	} {
		if v < 0 || v > 5 {
			return false
		}
	}
	return true
}

type CreateReviewRequest struct {
	EmployeeID  string `json:"employeeId"`
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`
	ReviewType  string `json:"reviewType"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if !validator.IsValidDate(r.PeriodStart) {
		errs = append(errs, validator.ValidationError{Field: "periodStart", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !validator.IsValidDate(r.PeriodEnd) {
		errs = append(errs, validator.ValidationError{Field: "periodEnd", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	switch r.ReviewType {
	case "Quarterly", "Half-Yearly", "Annual", "Probation":
	default:
		errs = append(errs, validator.ValidationError{Field: "reviewType", Message: "must be Quarterly, Half-Yearly, Annual, or Probation"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitSelfReviewRequest struct {
	ID                 string `json:"-"`
	Achievements       string `json:"achievements"`
	Challenges         string `json:"challenges"`
	AreasOfImprovement string `json:"areasOfImprovement"`
	Comments           string `json:"comments"`
}

type SubmitManagerReviewRequest struct {
	ID                 string       `json:"-"`
	Strengths          string       `json:"strengths"`
	AreasOfImprovement string       `json:"areasOfImprovement"`
	Recommendations    string       `json:"recommendations"`
	Comments           string       `json:"comments"`
	ReviewedBy         string       `json:"reviewedBy"`
	Ratings            RatingsInput `json:"ratings"`
}

func (r *SubmitManagerReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Ratings.validate() {
		errs = append(errs, validator.ValidationError{Field: "ratings", Message: "each rating must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AcknowledgeReviewRequest struct {
	ID       string `json:"-"`
	Comments string `json:"comments"`
}

type ReviewResponse struct {
	ID              string       `json:"id"`
	EmployeeID      string       `json:"employeeId"`
	EmployeeName    string       `json:"employeeName,omitempty"`
	PeriodStart     string       `json:"periodStart"`
	PeriodEnd       string       `json:"periodEnd"`
	ReviewType      string       `json:"reviewType"`
	Ratings         RatingsInput `json:"ratings"`
	OverallRating   float64      `json:"overallRating"`
	PerformanceBand string       `json:"performanceBand"`
	Status          string       `json:"status"`

	EmployeeAcknowledged bool   `json:"employeeAcknowledged"`
	AcknowledgedOn       string `json:"acknowledgedOn,omitempty"`
	EmployeeComments     string `json:"employeeComments,omitempty"`
}

type CreatePromotionRequest struct {
	EmployeeID          string          `json:"employeeId"`
	Type                string          `json:"type"`
	PreviousDesignation string          `json:"previousDesignation"`
	NewDesignation      string          `json:"newDesignation"`
	PreviousSalary      decimal.Decimal `json:"previousSalary"`
	NewSalary           decimal.Decimal `json:"newSalary"`
	IncrementPercentage decimal.Decimal `json:"incrementPercentage"`
	IncrementAmount     decimal.Decimal `json:"incrementAmount"`
	EffectiveDate       string          `json:"effectiveDate"`
	Reason              string          `json:"reason"`
	Remarks             string          `json:"remarks"`
}

func (r *CreatePromotionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if !isValidPromotionType(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be Promotion, Increment, Designation Change, or Grade Change"})
	}
	if !validator.IsValidDate(r.EffectiveDate) {
		errs = append(errs, validator.ValidationError{Field: "effectiveDate", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func isValidPromotionType(t string) bool {
	for _, v := range ValidPromotionTypes {
		if t == v {
			return true
		}
	}
	return false
}

type ApprovePromotionRequest struct {
	ID         string `json:"-"`
	ApprovedBy string `json:"approvedBy"`
}

type PromotionFilter struct {
	EmployeeID string
	Status     string
	Type       string
}

type PromotionResponse struct {
	ID                  string          `json:"id"`
	EmployeeID          string          `json:"employeeId"`
	EmployeeName        string          `json:"employeeName,omitempty"`
	Type                string          `json:"type"`
	PreviousDesignation string          `json:"previousDesignation,omitempty"`
	NewDesignation      string          `json:"newDesignation,omitempty"`
	PreviousSalary      decimal.Decimal `json:"previousSalary"`
	NewSalary           decimal.Decimal `json:"newSalary"`
	IncrementPercentage decimal.Decimal `json:"incrementPercentage"`
	IncrementAmount     decimal.Decimal `json:"incrementAmount"`
	EffectiveDate       string          `json:"effectiveDate"`
	Reason              string          `json:"reason,omitempty"`
	ApprovedBy          string          `json:"approvedBy,omitempty"`
	ApprovedOn          string          `json:"approvedOn,omitempty"`
	Status              string          `json:"status"`
	Remarks             string          `json:"remarks,omitempty"`
}
