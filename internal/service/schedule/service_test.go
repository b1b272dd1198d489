package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	staffRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/staff"
	timeoffRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/timeoff"
	whRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/workinghours"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/schedule/models"
	"github.com/avlebedev/SLB-BookingEngine/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// fakeWHRepo хранит расписание по ключу (staffID, weekday)
type fakeWHRepo struct {
	nextID int64
	hours  map[[2]int64]*domain.WorkingHours
}

func newFakeWHRepo() *fakeWHRepo {
	return &fakeWHRepo{hours: make(map[[2]int64]*domain.WorkingHours)}
}

func (f *fakeWHRepo) Upsert(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error) {
	key := [2]int64{wh.StaffID, int64(wh.Weekday)}
	saved := *wh
	if existing, ok := f.hours[key]; ok {
		saved.ID = existing.ID
	} else {
		f.nextID++
		saved.ID = f.nextID
	}
	f.hours[key] = &saved
	return &saved, nil
}

func (f *fakeWHRepo) GetByStaffAndWeekday(ctx context.Context, businessID, staffID int64, weekday int) (*domain.WorkingHours, error) {
	wh, ok := f.hours[[2]int64{staffID, int64(weekday)}]
	if !ok {
		return nil, whRepo.ErrWorkingHoursNotFound
	}
	return wh, nil
}

func (f *fakeWHRepo) ListByStaff(ctx context.Context, businessID, staffID int64) ([]*domain.WorkingHours, error) {
	result := make([]*domain.WorkingHours, 0)
	for _, wh := range f.hours {
		if wh.StaffID == staffID {
			result = append(result, wh)
		}
	}
	return result, nil
}

func (f *fakeWHRepo) Delete(ctx context.Context, businessID, staffID int64, weekday int) error {
	key := [2]int64{staffID, int64(weekday)}
	if _, ok := f.hours[key]; !ok {
		return whRepo.ErrWorkingHoursNotFound
	}
	delete(f.hours, key)
	return nil
}

type fakeTimeOffRepo struct {
	nextID   int64
	timeOffs map[int64]*domain.TimeOff
}

func newFakeTimeOffRepo() *fakeTimeOffRepo {
	return &fakeTimeOffRepo{timeOffs: make(map[int64]*domain.TimeOff)}
}

func (f *fakeTimeOffRepo) Create(ctx context.Context, t *domain.TimeOff) (*domain.TimeOff, error) {
	f.nextID++
	created := *t
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.timeOffs[created.ID] = &created
	return &created, nil
}

func (f *fakeTimeOffRepo) ListByStaff(ctx context.Context, businessID, staffID int64) ([]*domain.TimeOff, error) {
	result := make([]*domain.TimeOff, 0)
	for _, t := range f.timeOffs {
		if t.StaffID == staffID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *fakeTimeOffRepo) ListByStaffAndPeriod(ctx context.Context, businessID, staffID int64, start, end time.Time) ([]*domain.TimeOff, error) {
	return f.ListByStaff(ctx, businessID, staffID)
}

func (f *fakeTimeOffRepo) Delete(ctx context.Context, businessID, id int64) error {
	if _, ok := f.timeOffs[id]; !ok {
		return timeoffRepo.ErrTimeOffNotFound
	}
	delete(f.timeOffs, id)
	return nil
}

type fakeStaffRepo struct {
	knownStaff map[int64]bool
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, businessID, id int64) (*domain.Staff, error) {
	if !f.knownStaff[id] {
		return nil, staffRepo.ErrStaffNotFound
	}
	return &domain.Staff{ID: id, BusinessID: businessID, FirstName: "Anna", IsActive: true}, nil
}

func newTestService(t *testing.T) (*Service, *fakeWHRepo, *fakeTimeOffRepo) {
	t.Helper()

	wh := newFakeWHRepo()
	timeOff := newFakeTimeOffRepo()
	staff := &fakeStaffRepo{knownStaff: map[int64]bool{2: true}}

	return NewService(wh, timeOff, staff, noopLogger{}), wh, timeOff
}

func upsertRequest() *models.UpsertWorkingHoursRequest {
	return &models.UpsertWorkingHoursRequest{
		BusinessID: 1,
		StaffID:    2,
		Weekday:    0,
		StartTime:  "09:00",
		EndTime:    "18:00",
	}
}

func TestUpsertWorkingHours_Create(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.UpsertWorkingHours(context.Background(), upsertRequest())
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Weekday)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "18:00", resp.EndTime)
	assert.True(t, resp.IsActive)
}

func TestUpsertWorkingHours_ReplacesSameWeekday(t *testing.T) {
	svc, repo, _ := newTestService(t)

	first, err := svc.UpsertWorkingHours(context.Background(), upsertRequest())
	require.NoError(t, err)

	req := upsertRequest()
	req.StartTime = "10:00"
	second, err := svc.UpsertWorkingHours(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "10:00", second.StartTime)
	assert.Len(t, repo.hours, 1)
}

func TestUpsertWorkingHours_WithBreak(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := upsertRequest()
	req.BreakStart = ptr.Ptr("13:00")
	req.BreakEnd = ptr.Ptr("14:00")

	resp, err := svc.UpsertWorkingHours(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.BreakStart)
	assert.Equal(t, "13:00", *resp.BreakStart)
}

func TestUpsertWorkingHours_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.UpsertWorkingHoursRequest)
		wantErr error
	}{
		{
			name:    "weekday out of range",
			mutate:  func(r *models.UpsertWorkingHoursRequest) { r.Weekday = 7 },
			wantErr: ErrInvalidWeekday,
		},
		{
			name:    "negative weekday",
			mutate:  func(r *models.UpsertWorkingHoursRequest) { r.Weekday = -1 },
			wantErr: ErrInvalidWeekday,
		},
		{
			name:    "start after end",
			mutate:  func(r *models.UpsertWorkingHoursRequest) { r.StartTime = "19:00" },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "malformed time",
			mutate:  func(r *models.UpsertWorkingHoursRequest) { r.StartTime = "9am" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "break without end",
			mutate:  func(r *models.UpsertWorkingHoursRequest) { r.BreakStart = ptr.Ptr("13:00") },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "break outside working day",
			mutate: func(r *models.UpsertWorkingHoursRequest) {
				r.BreakStart = ptr.Ptr("08:00")
				r.BreakEnd = ptr.Ptr("08:30")
			},
			wantErr: ErrInvalidTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(t)
			req := upsertRequest()
			tt.mutate(req)

			_, err := svc.UpsertWorkingHours(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpsertWorkingHours_UnknownStaff(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := upsertRequest()
	req.StaffID = 99

	_, err := svc.UpsertWorkingHours(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestDeleteWorkingHours(t *testing.T) {
	svc, repo, _ := newTestService(t)

	_, err := svc.UpsertWorkingHours(context.Background(), upsertRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWorkingHours(context.Background(), 1, 2, 0))
	assert.Empty(t, repo.hours)

	assert.ErrorIs(t, svc.DeleteWorkingHours(context.Background(), 1, 2, 0), ErrWorkingHoursNotFound)
	assert.ErrorIs(t, svc.DeleteWorkingHours(context.Background(), 1, 2, 9), ErrInvalidWeekday)
}

func TestCreateTimeOff(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.CreateTimeOff(context.Background(), &models.CreateTimeOffRequest{
		BusinessID: 1,
		StaffID:    2,
		StartAt:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC),
		Reason:     ptr.Ptr("отпуск"),
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	require.NotNil(t, resp.Reason)
	assert.Equal(t, "отпуск", *resp.Reason)
}

func TestCreateTimeOff_InvertedRange(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateTimeOff(context.Background(), &models.CreateTimeOffRequest{
		BusinessID: 1,
		StaffID:    2,
		StartAt:    time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestDeleteTimeOff(t *testing.T) {
	svc, _, repo := newTestService(t)

	created, err := svc.CreateTimeOff(context.Background(), &models.CreateTimeOffRequest{
		BusinessID: 1,
		StaffID:    2,
		StartAt:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTimeOff(context.Background(), 1, created.ID))
	assert.Empty(t, repo.timeOffs)

	assert.ErrorIs(t, svc.DeleteTimeOff(context.Background(), 1, created.ID), ErrTimeOffNotFound)
}
