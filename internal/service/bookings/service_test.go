package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	bookingRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/booking"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/bookings/models"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

// fakeBookingRepo повторяет guard-семантику SQL-репозитория:
// Confirm затрагивает только живой hold, Cancel - hold и confirmed
type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
}

func (f *fakeBookingRepo) get(businessID, id int64) *domain.Booking {
	b, ok := f.bookings[id]
	if !ok || b.BusinessID != businessID {
		return nil
	}
	return b
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, businessID, id int64) (*domain.Booking, error) {
	b := f.get(businessID, id)
	if b == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.BusinessID != filter.BusinessID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeBookingRepo) Confirm(ctx context.Context, businessID, id int64, now time.Time) (int64, error) {
	b := f.get(businessID, id)
	if b == nil || b.Status != domain.StatusHold || b.IsHoldExpired(now) {
		return 0, nil
	}
	b.Status = domain.StatusConfirmed
	b.ExpiresAt = nil
	return 1, nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, businessID, id int64, reason *string, now time.Time) (int64, error) {
	b := f.get(businessID, id)
	if b == nil || (b.Status != domain.StatusHold && b.Status != domain.StatusConfirmed) {
		return 0, nil
	}
	b.Status = domain.StatusCancelled
	b.ExpiresAt = nil
	b.CancelReason = reason
	b.CancelledAt = &now
	return 1, nil
}

func (f *fakeBookingRepo) MarkExpired(ctx context.Context, businessID, id int64, now time.Time) error {
	b := f.get(businessID, id)
	if b != nil && b.Status == domain.StatusHold {
		b.Status = domain.StatusExpired
	}
	return nil
}

func (f *fakeBookingRepo) ExpireLapsed(ctx context.Context, now time.Time) (int64, error) {
	var expired int64
	for _, b := range f.bookings {
		if b.Status == domain.StatusHold && b.IsHoldExpired(now) {
			b.Status = domain.StatusExpired
			expired++
		}
	}
	return expired, nil
}

var testNow = time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *fakeBookingRepo, *fakeClock) {
	t.Helper()

	repo := newFakeBookingRepo()
	clock := &fakeClock{now: testNow}

	svc := NewService(repo, noopLogger{})
	svc.timeProvider = clock

	return svc, repo, clock
}

func seedBooking(repo *fakeBookingRepo, id int64, status domain.BookingStatus, expiresAt *time.Time) {
	repo.bookings[id] = &domain.Booking{
		ID:         id,
		BusinessID: 1,
		StaffID:    2,
		Status:     status,
		StartAt:    testNow.Add(2 * time.Hour),
		EndAt:      testNow.Add(2*time.Hour + 30*time.Minute),
		ExpiresAt:  expiresAt,
	}
}

func activeHoldExpiry() *time.Time {
	t := testNow.Add(10 * time.Minute)
	return &t
}

func lapsedHoldExpiry() *time.Time {
	t := testNow.Add(-10 * time.Minute)
	return &t
}

func TestConfirm_ActiveHold(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedBooking(repo, 1, domain.StatusHold, activeHoldExpiry())

	resp, err := svc.Confirm(context.Background(), &models.ConfirmBookingRequest{BusinessID: 1, BookingID: 1})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Nil(t, resp.ExpiresAt)
}

func TestConfirm_LapsedHold(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedBooking(repo, 1, domain.StatusHold, lapsedHoldExpiry())

	_, err := svc.Confirm(context.Background(), &models.ConfirmBookingRequest{BusinessID: 1, BookingID: 1})
	assert.ErrorIs(t, err, ErrHoldExpired)

	// Ленивое устаревание: истекший hold помечен expired
	assert.Equal(t, domain.StatusExpired, repo.bookings[1].Status)
}

func TestConfirm_AlreadyExpired(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedBooking(repo, 1, domain.StatusExpired, nil)

	_, err := svc.Confirm(context.Background(), &models.ConfirmBookingRequest{BusinessID: 1, BookingID: 1})
	assert.ErrorIs(t, err, ErrHoldExpired)
}

func TestConfirm_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name   string
		status domain.BookingStatus
	}{
		{"confirmed", domain.StatusConfirmed},
		{"cancelled", domain.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestService(t)
			seedBooking(repo, 1, tt.status, nil)

			_, err := svc.Confirm(context.Background(), &models.ConfirmBookingRequest{BusinessID: 1, BookingID: 1})
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestConfirm_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Confirm(context.Background(), &models.ConfirmBookingRequest{BusinessID: 1, BookingID: 404})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestConfirm_WrongBusiness(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedBooking(repo, 1, domain.StatusHold, activeHoldExpiry())

	_, err := svc.Confirm(context.Background(), &models.ConfirmBookingRequest{BusinessID: 2, BookingID: 1})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_Hold(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedBooking(repo, 1, domain.StatusHold, activeHoldExpiry())

	reason := "клиент передумал"
	err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BusinessID: 1, BookingID: 1, Reason: &reason})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
	require.NotNil(t, repo.bookings[1].CancelReason)
	assert.Equal(t, reason, *repo.bookings[1].CancelReason)
}

func TestCancel_Confirmed(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedBooking(repo, 1, domain.StatusConfirmed, nil)

	err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BusinessID: 1, BookingID: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
}

func TestCancel_TerminalStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status domain.BookingStatus
	}{
		{"cancelled", domain.StatusCancelled},
		{"expired", domain.StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestService(t)
			seedBooking(repo, 1, tt.status, nil)

			err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BusinessID: 1, BookingID: 1})
			assert.ErrorIs(t, err, ErrCannotCancel)
		})
	}
}

func TestCancel_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BusinessID: 1, BookingID: 404})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_LazyExpiry(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedBooking(repo, 1, domain.StatusHold, lapsedHoldExpiry())

	resp, err := svc.GetByID(context.Background(), 1, 1)
	require.NoError(t, err)

	// В выдаче статус expired, хранилище не трогаем - reaper догонит
	assert.Equal(t, string(domain.StatusExpired), resp.Status)
	assert.Equal(t, domain.StatusHold, repo.bookings[1].Status)
}

func TestList_LazyExpiryAndFilter(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedBooking(repo, 1, domain.StatusHold, lapsedHoldExpiry())
	seedBooking(repo, 2, domain.StatusConfirmed, nil)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{BusinessID: 1})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)

	statuses := map[int64]string{}
	for _, b := range resp.Bookings {
		statuses[b.ID] = b.Status
	}
	assert.Equal(t, string(domain.StatusExpired), statuses[1])
	assert.Equal(t, string(domain.StatusConfirmed), statuses[2])
}

func TestList_InvalidStatusFilter(t *testing.T) {
	svc, _, _ := newTestService(t)

	bad := "unknown"
	_, err := svc.List(context.Background(), &models.ListBookingsRequest{BusinessID: 1, Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExpireLapsed(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedBooking(repo, 1, domain.StatusHold, lapsedHoldExpiry())
	seedBooking(repo, 2, domain.StatusHold, activeHoldExpiry())
	seedBooking(repo, 3, domain.StatusConfirmed, nil)

	expired, err := svc.ExpireLapsed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), expired)
	assert.Equal(t, domain.StatusExpired, repo.bookings[1].Status)
	assert.Equal(t, domain.StatusHold, repo.bookings[2].Status)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[3].Status)
}
