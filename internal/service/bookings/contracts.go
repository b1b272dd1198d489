package bookings

import (
	"context"
	"time"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, businessID, id int64) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Confirm(ctx context.Context, businessID, id int64, now time.Time) (int64, error)
	Cancel(ctx context.Context, businessID, id int64, reason *string, now time.Time) (int64, error)
	MarkExpired(ctx context.Context, businessID, id int64, now time.Time) error
	ExpireLapsed(ctx context.Context, now time.Time) (int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
