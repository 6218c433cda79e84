package performance

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

type GoalStatus string

const (
	GoalNotStarted GoalStatus = "Not Started"
	GoalInProgress GoalStatus = "In Progress"
	GoalCompleted  GoalStatus = "Completed"
	GoalDelayed    GoalStatus = "Delayed"
	GoalCancelled  GoalStatus = "Cancelled"
)

type Goal struct {
	ID           string
	EmployeeID   string
	Title        string
	Description  string
	Category     string // Individual, Team, Organizational
	Type         string // KPI, OKR, Project, Skill Development, Other
	TargetValue  string
	CurrentValue string
	Weightage    int
	StartDate    time.Time
	EndDate      time.Time
	Status       GoalStatus
	Progress     int
	AssignedBy   string

	// Joined fields.
	EmployeeName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReviewStatus string

const (
	ReviewPendingSelf    ReviewStatus = "Pending Self Review"
	ReviewPendingManager ReviewStatus = "Pending Manager Review"
	ReviewCompleted      ReviewStatus = "Completed"
	ReviewAcknowledged   ReviewStatus = "Acknowledged"
)

type Band string

const (
	BandOutstanding    Band = "Outstanding"
	BandExceeds        Band = "Exceeds Expectations"
	BandMeets          Band = "Meets Expectations"
	BandNeedsWork      Band = "Needs Improvement"
	BandUnsatisfactory Band = "Unsatisfactory"
	BandNotRated       Band = "Not Rated"
)

// Ratings holds the per-competency scores of a review, 1-5 each. A zero
// means the competency was not rated.
type Ratings struct {
	Technical      int
	Communication  int
	Teamwork       int
	Leadership     int
	ProblemSolving int
	Initiative     int
	Punctuality    int
	Quality        int
}

func (r Ratings) values() []int {
	return []int{
		r.Technical, r.Communication, r.Teamwork, r.Leadership,
		r.ProblemSolving, r.Initiative, r.Punctuality, r.Quality,
	}
}

// OverallRating averages the rated competencies only, rounded to two
// decimal places. Unrated competencies do not drag the mean down.
func (r Ratings) OverallRating() float64 {
	sum, n := 0, 0
	for _, v := range r.values() {
		if v > 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(n)*100) / 100
}

// BandFor maps an overall rating to its performance band.
func BandFor(rating float64) Band {
	switch {
	case rating == 0:
		return BandNotRated
	case rating >= 4.5:
		return BandOutstanding
	case rating >= 3.5:
		return BandExceeds
	case rating >= 2.5:
		return BandMeets
	case rating >= 1.5:
		return BandNeedsWork
	default:
		return BandUnsatisfactory
	}
}

type SelfReview struct {
	Achievements       string
	Challenges         string
	AreasOfImprovement string
	Comments           string
	SubmittedOn        *time.Time
}

type ManagerReview struct {
	Strengths          string
	AreasOfImprovement string
	Recommendations    string
	Comments           string
	ReviewedBy         string
	ReviewedOn         *time.Time
}

type Review struct {
	ID          string
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time
	ReviewType  string // Quarterly, Half-Yearly, Annual, Probation

	SelfReview    SelfReview
	ManagerReview ManagerReview
	Ratings       Ratings

	OverallRating   float64
	PerformanceBand Band
	Status          ReviewStatus

	EmployeeAcknowledged bool
	AcknowledgedOn       *time.Time
	EmployeeComments     string

	// Joined fields.
	EmployeeName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Finalize derives the overall rating and band from the ratings.
func (r *Review) Finalize() {
	r.OverallRating = r.Ratings.OverallRating()
	r.PerformanceBand = BandFor(r.OverallRating)
}

type PromotionStatus string

const (
	PromotionPending     PromotionStatus = "Pending"
	PromotionApproved    PromotionStatus = "Approved"
	PromotionImplemented PromotionStatus = "Implemented"
	PromotionRejected    PromotionStatus = "Rejected"
)

var ValidPromotionTypes = []string{"Promotion", "Increment", "Designation Change", "Grade Change"}

type Promotion struct {
	ID                  string
	EmployeeID          string
	Type                string // Promotion, Increment, Designation Change, Grade Change
	PreviousDesignation string
	NewDesignation      string
	PreviousSalary      decimal.Decimal
	NewSalary           decimal.Decimal
	IncrementPercentage decimal.Decimal
	IncrementAmount     decimal.Decimal
	EffectiveDate       time.Time
	Reason              string
	ApprovedBy          string
	ApprovedOn          *time.Time
	Status              PromotionStatus
	Remarks             string

	// Joined fields.
	EmployeeName string

	CreatedAt time.Time
	UpdatedAt time.Time
}
