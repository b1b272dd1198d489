package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusHold временная бронь, блокирует слот до expires_at
	StatusHold BookingStatus = "hold"
	// StatusConfirmed подтвержденная бронь
	StatusConfirmed BookingStatus = "confirmed"
	// StatusCancelled отмененная бронь (из hold или confirmed)
	StatusCancelled BookingStatus = "cancelled"
	// StatusExpired истекший hold, переведенный reaper'ом (bookkeeping)
	StatusExpired BookingStatus = "expired"
)

// Booking represents a reservation of a staff member's time for a service
type Booking struct {
	ID             int64
	BusinessID     int64
	StaffID        int64
	StaffServiceID int64
	CustomerID     int64

	StartAt time.Time
	EndAt   time.Time

	// Price and duration are pinned at creation time from the effective offering
	Price           int64
	DurationMinutes int

	Status    BookingStatus
	ExpiresAt *time.Time // set only while Status == hold

	CustomerName string
	Comment      *string

	CancelReason *string
	CancelledAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsHoldExpired returns true if the booking is a hold whose TTL has passed
func (b *Booking) IsHoldExpired(now time.Time) bool {
	return b.Status == StatusHold && b.ExpiresAt != nil && !b.ExpiresAt.After(now)
}

// IsBlocking returns true if the booking occupies its interval for availability:
// confirmed, or an unexpired hold. Expired holds stop blocking without any
// explicit state transition.
func (b *Booking) IsBlocking(now time.Time) bool {
	switch b.Status {
	case StatusConfirmed:
		return true
	case StatusHold:
		return b.ExpiresAt != nil && b.ExpiresAt.After(now)
	default:
		return false
	}
}

// CanBeConfirmed returns true if confirm() is a legal transition
func (b *Booking) CanBeConfirmed(now time.Time) bool {
	return b.Status == StatusHold && !b.IsHoldExpired(now)
}

// CanBeCancelled returns true if cancel() is a legal transition
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusHold || b.Status == StatusConfirmed
}

// Overlaps reports whether the booking interval intersects [start, end).
// Touching boundaries do not count as an overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartAt.Before(end) && b.EndAt.After(start)
}

// BookingsFilter фильтр для выборки бронирований бизнеса
type BookingsFilter struct {
	BusinessID int64          // Обязательный параметр
	StaffID    *int64         // Фильтр по сотруднику (опционально)
	CustomerID *int64         // Фильтр по клиенту (опционально)
	From       *time.Time     // Начало периода (опционально)
	To         *time.Time     // Конец периода (опционально)
	Status     *BookingStatus // Фильтр по статусу (опционально)
}
