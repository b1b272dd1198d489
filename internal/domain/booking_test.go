package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestBooking_IsBlocking(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		booking Booking
		want    bool
	}{
		{
			name:    "confirmed blocks",
			booking: Booking{Status: StatusConfirmed},
			want:    true,
		},
		{
			name:    "active hold blocks",
			booking: Booking{Status: StatusHold, ExpiresAt: timePtr(now.Add(10 * time.Minute))},
			want:    true,
		},
		{
			name:    "lapsed hold does not block",
			booking: Booking{Status: StatusHold, ExpiresAt: timePtr(now.Add(-time.Minute))},
			want:    false,
		},
		{
			name:    "hold expiring exactly now does not block",
			booking: Booking{Status: StatusHold, ExpiresAt: timePtr(now)},
			want:    false,
		},
		{
			name:    "cancelled does not block",
			booking: Booking{Status: StatusCancelled},
			want:    false,
		},
		{
			name:    "expired does not block",
			booking: Booking{Status: StatusExpired},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.IsBlocking(now))
		})
	}
}

func TestBooking_Transitions(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)

	activeHold := Booking{Status: StatusHold, ExpiresAt: timePtr(now.Add(time.Minute))}
	lapsedHold := Booking{Status: StatusHold, ExpiresAt: timePtr(now.Add(-time.Minute))}
	confirmed := Booking{Status: StatusConfirmed}
	cancelled := Booking{Status: StatusCancelled}
	expired := Booking{Status: StatusExpired}

	assert.True(t, activeHold.CanBeConfirmed(now))
	assert.False(t, lapsedHold.CanBeConfirmed(now))
	assert.False(t, confirmed.CanBeConfirmed(now))
	assert.False(t, cancelled.CanBeConfirmed(now))
	assert.False(t, expired.CanBeConfirmed(now))

	assert.True(t, activeHold.CanBeCancelled())
	assert.True(t, confirmed.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())
	assert.False(t, expired.CanBeCancelled())
}

func TestBooking_Overlaps(t *testing.T) {
	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	b := Booking{StartAt: day.Add(10 * time.Hour), EndAt: day.Add(11 * time.Hour)}

	assert.True(t, b.Overlaps(day.Add(10*time.Hour+30*time.Minute), day.Add(12*time.Hour)))
	assert.True(t, b.Overlaps(day.Add(9*time.Hour), day.Add(12*time.Hour)))

	// Граничащие интервалы не пересекаются
	assert.False(t, b.Overlaps(day.Add(11*time.Hour), day.Add(12*time.Hour)))
	assert.False(t, b.Overlaps(day.Add(9*time.Hour), day.Add(10*time.Hour)))
}

func TestResolveOffering(t *testing.T) {
	svc := &Service{ID: 7, DurationMinutes: 60, Price: 5000}

	t.Run("no overrides", func(t *testing.T) {
		link := &StaffService{ID: 3, StaffID: 2, ServiceID: 7}

		off := ResolveOffering(link, svc)
		assert.Equal(t, 60, off.DurationMinutes)
		assert.Equal(t, int64(5000), off.Price)
		assert.Equal(t, int64(3), off.StaffServiceID)
	})

	t.Run("overrides win", func(t *testing.T) {
		duration := 45
		price := int64(4000)
		link := &StaffService{ID: 3, StaffID: 2, ServiceID: 7, DurationOverride: &duration, PriceOverride: &price}

		off := ResolveOffering(link, svc)
		assert.Equal(t, 45, off.DurationMinutes)
		assert.Equal(t, int64(4000), off.Price)
	})
}
