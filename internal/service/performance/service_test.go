package performance

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/domain/performance"
)

type stubEmployeeRepo struct {
	employees map[string]*employee.Employee
}

func (r *stubEmployeeRepo) Create(ctx context.Context, emp *employee.Employee) error { return nil }
func (r *stubEmployeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	emp, ok := r.employees[employeeID]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return emp, nil
}
func (r *stubEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }
func (r *stubEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (r *stubEmployeeRepo) Update(ctx context.Context, emp *employee.Employee) error {
	r.employees[emp.EmployeeID] = emp
	return nil
}
func (r *stubEmployeeRepo) Delete(ctx context.Context, employeeID string) error { return nil }
func (r *stubEmployeeRepo) Count(ctx context.Context) (int64, error)            { return 0, nil }

type stubGoalRepo struct{}

func (r *stubGoalRepo) Create(ctx context.Context, g *performance.Goal) error { return nil }
func (r *stubGoalRepo) GetByID(ctx context.Context, id string) (*performance.Goal, error) {
	return nil, performance.ErrGoalNotFound
}
func (r *stubGoalRepo) ListByEmployee(ctx context.Context, employeeID string) ([]performance.Goal, error) {
	return nil, nil
}
func (r *stubGoalRepo) Update(ctx context.Context, g *performance.Goal) error { return nil }
func (r *stubGoalRepo) Delete(ctx context.Context, id string) error           { return nil }

type stubReviewRepo struct {
	byID   map[string]*performance.Review
	nextID int
}

func (r *stubReviewRepo) Create(ctx context.Context, rv *performance.Review) error {
	r.nextID++
	rv.ID = strconv.Itoa(r.nextID)
	r.byID[rv.ID] = rv
	return nil
}
func (r *stubReviewRepo) GetByID(ctx context.Context, id string) (*performance.Review, error) {
	rv, ok := r.byID[id]
	if !ok {
		return nil, performance.ErrReviewNotFound
	}
	return rv, nil
}
func (r *stubReviewRepo) ListByEmployee(ctx context.Context, employeeID string) ([]performance.Review, error) {
	return nil, nil
}
func (r *stubReviewRepo) Update(ctx context.Context, rv *performance.Review) error {
	r.byID[rv.ID] = rv
	return nil
}

type stubPromotionRepo struct {
	byID   map[string]*performance.Promotion
	nextID int
}

func (r *stubPromotionRepo) Create(ctx context.Context, p *performance.Promotion) error {
	r.nextID++
	p.ID = strconv.Itoa(r.nextID)
	r.byID[p.ID] = p
	return nil
}
func (r *stubPromotionRepo) GetByID(ctx context.Context, id string) (*performance.Promotion, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, performance.ErrPromotionNotFound
	}
	return p, nil
}
func (r *stubPromotionRepo) List(ctx context.Context, filter performance.PromotionFilter) ([]performance.Promotion, error) {
	var out []performance.Promotion
	for _, p := range r.byID {
		if filter.EmployeeID != "" && p.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && string(p.Status) != filter.Status {
			continue
		}
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}
func (r *stubPromotionRepo) Update(ctx context.Context, p *performance.Promotion) error {
	r.byID[p.ID] = p
	return nil
}

func newTestService(employees *stubEmployeeRepo, reviews *stubReviewRepo, promotions *stubPromotionRepo) *PerformanceServiceImpl {
	svc := NewPerformanceService(nil, &stubGoalRepo{}, reviews, promotions, employees)
	svc.now = func() time.Time {
		return time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func newStubs() (*stubEmployeeRepo, *stubReviewRepo, *stubPromotionRepo) {
	employees := &stubEmployeeRepo{employees: map[string]*employee.Employee{
		"EMP001": {EmployeeID: "EMP001", FullName: "Asha Nair", Designation: "Software Engineer", Status: employee.StatusActive},
	}}
	reviews := &stubReviewRepo{byID: map[string]*performance.Review{}}
	promotions := &stubPromotionRepo{byID: map[string]*performance.Promotion{}}
	return employees, reviews, promotions
}

func TestCreatePromotionDefaultsFromEmployee(t *testing.T) {
	employees, reviews, promotions := newStubs()
	svc := newTestService(employees, reviews, promotions)
	ctx := context.Background()

	resp, err := svc.CreatePromotion(ctx, &performance.CreatePromotionRequest{
		EmployeeID:     "EMP001",
		Type:           "Promotion",
		NewDesignation: "Senior Software Engineer",
		NewSalary:      decimal.NewFromInt(90000),
		EffectiveDate:  "2025-08-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "Pending", resp.Status)
	// The current designation is captured when the request omits it.
	assert.Equal(t, "Software Engineer", resp.PreviousDesignation)
	assert.Equal(t, "2025-08-01", resp.EffectiveDate)
}

func TestCreatePromotionRejectsUnknownType(t *testing.T) {
	employees, reviews, promotions := newStubs()
	svc := newTestService(employees, reviews, promotions)

	_, err := svc.CreatePromotion(context.Background(), &performance.CreatePromotionRequest{
		EmployeeID:    "EMP001",
		Type:          "Transfer",
		EffectiveDate: "2025-08-01",
	})
	require.Error(t, err)
}

func TestImplementPromotionRequiresApproval(t *testing.T) {
	employees, reviews, promotions := newStubs()
	svc := newTestService(employees, reviews, promotions)
	ctx := context.Background()

	created, err := svc.CreatePromotion(ctx, &performance.CreatePromotionRequest{
		EmployeeID:     "EMP001",
		Type:           "Promotion",
		NewDesignation: "Senior Software Engineer",
		EffectiveDate:  "2025-08-01",
	})
	require.NoError(t, err)

	_, err = svc.ImplementPromotion(ctx, created.ID)
	assert.ErrorIs(t, err, performance.ErrPromotionNotApproved)
}

func TestApproveAndImplementPromotion(t *testing.T) {
	employees, reviews, promotions := newStubs()
	svc := newTestService(employees, reviews, promotions)
	ctx := context.Background()

	created, err := svc.CreatePromotion(ctx, &performance.CreatePromotionRequest{
		EmployeeID:     "EMP001",
		Type:           "Promotion",
		NewDesignation: "Senior Software Engineer",
		EffectiveDate:  "2025-08-01",
	})
	require.NoError(t, err)

	approved, err := svc.ApprovePromotion(ctx, &performance.ApprovePromotionRequest{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "Approved", approved.Status)
	assert.Equal(t, "HR Admin", approved.ApprovedBy)
	assert.NotEmpty(t, approved.ApprovedOn)

	implemented, err := svc.ImplementPromotion(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Implemented", implemented.Status)

	emp, err := employees.GetByEmployeeID(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "Senior Software Engineer", emp.Designation)
}

func TestAcknowledgeReview(t *testing.T) {
	employees, reviews, promotions := newStubs()
	svc := newTestService(employees, reviews, promotions)
	ctx := context.Background()

	created, err := svc.CreateReview(ctx, &performance.CreateReviewRequest{
		EmployeeID:  "EMP001",
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-03-31",
		ReviewType:  "Quarterly",
	})
	require.NoError(t, err)

	resp, err := svc.AcknowledgeReview(ctx, &performance.AcknowledgeReviewRequest{
		ID:       created.ID,
		Comments: "Agreed with the assessment",
	})
	require.NoError(t, err)

	assert.True(t, resp.EmployeeAcknowledged)
	assert.Equal(t, "Acknowledged", resp.Status)
	assert.Equal(t, "Agreed with the assessment", resp.EmployeeComments)
	assert.NotEmpty(t, resp.AcknowledgedOn)
}

func TestAcknowledgeReviewNotFound(t *testing.T) {
	employees, reviews, promotions := newStubs()
	svc := newTestService(employees, reviews, promotions)

	_, err := svc.AcknowledgeReview(context.Background(), &performance.AcknowledgeReviewRequest{ID: "missing"})
	assert.ErrorIs(t, err, performance.ErrReviewNotFound)
}
