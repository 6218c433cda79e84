package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
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
	out := make([]employee.Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		out = append(out, *emp)
	}
	return out, nil
}

func (r *stubEmployeeRepo) Update(ctx context.Context, emp *employee.Employee) error { return nil }
func (r *stubEmployeeRepo) Delete(ctx context.Context, employeeID string) error      { return nil }
func (r *stubEmployeeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.employees)), nil
}

type stubAttendanceRepo struct {
	byKey map[string]*attendance.Attendance // employeeID + "|" + date
}

func newStubAttendanceRepo() *stubAttendanceRepo {
	return &stubAttendanceRepo{byKey: make(map[string]*attendance.Attendance)}
}

func (r *stubAttendanceRepo) Create(ctx context.Context, att *attendance.Attendance) error {
	att.ID = "att-" + att.EmployeeID
	r.byKey[att.EmployeeID+"|"+att.Date.Format("2006-01-02")] = att
	return nil
}

func (r *stubAttendanceRepo) GetByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	for _, att := range r.byKey {
		if att.ID == id {
			return att, nil
		}
	}
	return nil, attendance.ErrAttendanceNotFound
}

func (r *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*attendance.Attendance, error) {
	att, ok := r.byKey[employeeID+"|"+date]
	if !ok {
		return nil, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (r *stubAttendanceRepo) Update(ctx context.Context, att *attendance.Attendance) error {
	return nil
}

func (r *stubAttendanceRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *stubAttendanceRepo) DeleteByEmployee(ctx context.Context, employeeID string) error {
	return nil
}

func (r *stubAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	out := make([]attendance.Attendance, 0, len(r.byKey))
	for _, att := range r.byKey {
		out = append(out, *att)
	}
	return out, nil
}

func (r *stubAttendanceRepo) ListByEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]attendance.Attendance, error) {
	return nil, nil
}

func (r *stubAttendanceRepo) ListByDateRange(ctx context.Context, startDate, endDate string) ([]attendance.Attendance, error) {
	return nil, nil
}

func (r *stubAttendanceRepo) ListPendingCorrections(ctx context.Context) ([]attendance.Attendance, error) {
	return nil, nil
}

func (r *stubAttendanceRepo) CountPendingCorrections(ctx context.Context) (int64, error) {
	return 0, nil
}

func (r *stubAttendanceRepo) CountByStatusAndRange(ctx context.Context, employeeID, startDate, endDate string, statuses []attendance.Status) (int, error) {
	return 0, nil
}

func newTestService(attRepo *stubAttendanceRepo, at time.Time) *AttendanceServiceImpl {
	empRepo := &stubEmployeeRepo{employees: map[string]*employee.Employee{
		"EMP001": {EmployeeID: "EMP001", FullName: "Asha Rao", Status: "Active"},
	}}
	svc := NewAttendanceService(nil, attRepo, empRepo, attendance.DefaultWorkConfig())
	svc.now = func() time.Time { return at }
	return svc
}

func TestPunchIn(t *testing.T) {
	ctx := context.Background()
	repo := newStubAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 6, 2, 9, 5, 0, 0, time.UTC))

	resp, err := svc.PunchIn(ctx, &attendance.PunchRequest{EmployeeID: "EMP001"})
	require.NoError(t, err)

	assert.Equal(t, "Present", resp.Status)
	assert.NotNil(t, resp.PunchIn)
	assert.Nil(t, resp.PunchOut)
}

func TestPunchInLate(t *testing.T) {
	ctx := context.Background()
	repo := newStubAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC))

	resp, err := svc.PunchIn(ctx, &attendance.PunchRequest{EmployeeID: "EMP001"})
	require.NoError(t, err)

	assert.Equal(t, "Late", resp.Status)
}

func TestPunchInEarlyMorningLocalZone(t *testing.T) {
	ctx := context.Background()
	repo := newStubAttendanceRepo()
	ist := time.FixedZone("IST", 5*3600+1800)
	svc := newTestService(repo, time.Date(2025, 6, 2, 1, 0, 0, 0, ist))

	_, err := svc.PunchIn(ctx, &attendance.PunchRequest{EmployeeID: "EMP001"})
	require.NoError(t, err)

	// The record must be stored under the local calendar day, not the
	// UTC-epoch day boundary.
	stored, err := repo.GetByEmployeeAndDate(ctx, "EMP001", "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", stored.Date.Format("2006-01-02"))

	svc.now = func() time.Time { return time.Date(2025, 6, 2, 18, 0, 0, 0, ist) }
	resp, err := svc.PunchOut(ctx, &attendance.PunchRequest{EmployeeID: "EMP001"})
	require.NoError(t, err)
	assert.NotNil(t, resp.PunchOut)
}

func TestPunchInTwice(t *testing.T) {
	ctx := context.Background()
	repo := newStubAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

	_, err := svc.PunchIn(ctx, &attendance.PunchRequest{EmployeeID: "EMP001"})
	require.NoError(t, err)

	_, err = svc.PunchIn(ctx, &attendance.PunchRequest{EmployeeID: "EMP001"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedIn)
}

func TestPunchInUnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newStubAttendanceRepo(), time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

	_, err := svc.PunchIn(ctx, &attendance.PunchRequest{EmployeeID: "EMP999"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPunchOut(t *testing.T) {
	ctx := context.Background()
	repo := newStubAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

	_, err := svc.PunchIn(ctx, &attendance.PunchRequest{EmployeeID: "EMP001"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC) }
	resp, err := svc.PunchOut(ctx, &attendance.PunchRequest{EmployeeID: "EMP001"})
	require.NoError(t, err)

	assert.Equal(t, "Present", resp.Status)
	assert.Equal(t, 9.0, resp.WorkingHours)
	assert.NotNil(t, resp.PunchOut)
}

func TestPunchOutShortShift(t *testing.T) {
	ctx := context.Background()
	repo := newStubAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

	_, err := svc.PunchIn(ctx, &attendance.PunchRequest{EmployeeID: "EMP001"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, 6, 2, 12, 30, 0, 0, time.UTC) }
	resp, err := svc.PunchOut(ctx, &attendance.PunchRequest{EmployeeID: "EMP001"})
	require.NoError(t, err)

	assert.Equal(t, "Half-Day", resp.Status)
	assert.Equal(t, 3.5, resp.WorkingHours)
}

func TestPunchOutWithoutPunchIn(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newStubAttendanceRepo(), time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC))

	_, err := svc.PunchOut(ctx, &attendance.PunchRequest{EmployeeID: "EMP001"})
	assert.ErrorIs(t, err, attendance.ErrNotPunchedIn)
}

func TestPunchOutTwice(t *testing.T) {
	ctx := context.Background()
	repo := newStubAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

	_, err := svc.PunchIn(ctx, &attendance.PunchRequest{EmployeeID: "EMP001"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC) }
	_, err = svc.PunchOut(ctx, &attendance.PunchRequest{EmployeeID: "EMP001"})
	require.NoError(t, err)

	_, err = svc.PunchOut(ctx, &attendance.PunchRequest{EmployeeID: "EMP001"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedOut)
}

func TestPunchStatusNoRecord(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newStubAttendanceRepo(), time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))

	resp, err := svc.PunchStatus(ctx, "EMP001")
	require.NoError(t, err)

	assert.False(t, resp.HasPunchedIn)
	assert.False(t, resp.HasPunchedOut)
	assert.Nil(t, resp.Status)
}

func TestPunchStatusAfterPunchIn(t *testing.T) {
	ctx := context.Background()
	repo := newStubAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

	_, err := svc.PunchIn(ctx, &attendance.PunchRequest{EmployeeID: "EMP001"})
	require.NoError(t, err)

	resp, err := svc.PunchStatus(ctx, "EMP001")
	require.NoError(t, err)

	assert.True(t, resp.HasPunchedIn)
	assert.False(t, resp.HasPunchedOut)
	require.NotNil(t, resp.Status)
	assert.Equal(t, "Present", *resp.Status)
}
