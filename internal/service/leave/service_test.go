package leave

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrmslite/hrms-backend-go/internal/domain/leave"
)

type stubHolidayRepo struct {
	byDate map[string]*leave.Holiday
	nextID int
}

func newStubHolidayRepo() *stubHolidayRepo {
	return &stubHolidayRepo{byDate: make(map[string]*leave.Holiday)}
}

func (r *stubHolidayRepo) Create(ctx context.Context, h *leave.Holiday) error {
	r.nextID++
	h.ID = "hol-" + strconv.Itoa(r.nextID)
	r.byDate[h.Date.Format("2006-01-02")] = h
	return nil
}

func (r *stubHolidayRepo) GetByID(ctx context.Context, id string) (*leave.Holiday, error) {
	for _, h := range r.byDate {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, leave.ErrHolidayNotFound
}

func (r *stubHolidayRepo) GetByDate(ctx context.Context, date string) (*leave.Holiday, error) {
	h, ok := r.byDate[date]
	if !ok {
		return nil, leave.ErrHolidayNotFound
	}
	return h, nil
}

func (r *stubHolidayRepo) List(ctx context.Context, year int) ([]leave.Holiday, error) {
	var out []leave.Holiday
	for _, h := range r.byDate {
		if h.Date.Year() == year && h.IsActive {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (r *stubHolidayRepo) ListInRange(ctx context.Context, startDate, endDate string) ([]leave.Holiday, error) {
	var out []leave.Holiday
	for date, h := range r.byDate {
		if date >= startDate && date <= endDate && h.IsActive {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (r *stubHolidayRepo) Update(ctx context.Context, h *leave.Holiday) error {
	for date, existing := range r.byDate {
		if existing.ID == h.ID {
			delete(r.byDate, date)
			r.byDate[h.Date.Format("2006-01-02")] = h
			return nil
		}
	}
	return leave.ErrHolidayNotFound
}

func (r *stubHolidayRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *stubHolidayRepo) ListUpcoming(ctx context.Context, from string, limit int) ([]leave.Holiday, error) {
	return nil, nil
}

func newHolidayTestService(repo *stubHolidayRepo) *LeaveServiceImpl {
	svc := NewLeaveService(nil, nil, nil, nil, repo, nil)
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateHolidayDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newStubHolidayRepo()
	svc := newHolidayTestService(repo)

	resp, err := svc.CreateHoliday(ctx, &leave.CreateHolidayRequest{
		Name: "Founders Day",
		Date: "2025-07-21",
	})
	require.NoError(t, err)

	assert.Equal(t, "Company", resp.Type)
	assert.True(t, resp.IsActive)
	assert.False(t, resp.IsOptional)
}

func TestCreateHolidayRejectsUnknownType(t *testing.T) {
	ctx := context.Background()
	svc := newHolidayTestService(newStubHolidayRepo())

	_, err := svc.CreateHoliday(ctx, &leave.CreateHolidayRequest{
		Name: "Founders Day",
		Date: "2025-07-21",
		Type: "Floating",
	})
	assert.Error(t, err)
}

func TestUpdateHolidayPatchesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	repo := newStubHolidayRepo()
	svc := newHolidayTestService(repo)

	created, err := svc.CreateHoliday(ctx, &leave.CreateHolidayRequest{
		Name: "Diwali",
		Date: "2025-11-01",
		Type: "National",
	})
	require.NoError(t, err)

	inactive := false
	resp, err := svc.UpdateHoliday(ctx, &leave.UpdateHolidayRequest{
		ID:       created.ID,
		IsActive: &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, "Diwali", resp.Name)
	assert.Equal(t, "National", resp.Type)
	assert.False(t, resp.IsActive)

	// Deactivated holidays drop out of the range used by payroll.
	inRange, err := repo.ListInRange(ctx, "2025-11-01", "2025-11-30")
	require.NoError(t, err)
	assert.Empty(t, inRange)
}

func TestUpdateHolidayNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newHolidayTestService(newStubHolidayRepo())

	name := "Diwali"
	_, err := svc.UpdateHoliday(ctx, &leave.UpdateHolidayRequest{ID: "missing", Name: &name})
	assert.ErrorIs(t, err, leave.ErrHolidayNotFound)
}

func TestInitializeHolidaysSeedsDefaultsOnce(t *testing.T) {
	ctx := context.Background()
	repo := newStubHolidayRepo()
	svc := newHolidayTestService(repo)

	require.NoError(t, svc.InitializeHolidays(ctx, 2025))

	seeded, err := svc.ListHolidays(ctx, 2025)
	require.NoError(t, err)
	assert.Len(t, seeded, 7)
	for _, h := range seeded {
		assert.Equal(t, "National", h.Type)
		assert.True(t, h.IsActive)
	}

	// A second run must not duplicate existing dates.
	require.NoError(t, svc.InitializeHolidays(ctx, 2025))
	again, err := svc.ListHolidays(ctx, 2025)
	require.NoError(t, err)
	assert.Len(t, again, 7)
}
