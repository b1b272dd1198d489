package get_available_slots

import (
	"context"
	"time"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, businessID, id int64) (*domain.Staff, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, businessID, id int64) (*domain.Service, error)
}

// StaffLinkRepository интерфейс репозитория связок сотрудник-услуга
type StaffLinkRepository interface {
	GetByStaffAndService(ctx context.Context, businessID, staffID, serviceID int64) (*domain.StaffService, error)
}

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	GetByStaffAndWeekday(ctx context.Context, businessID, staffID int64, weekday int) (*domain.WorkingHours, error)
}

// TimeOffRepository интерфейс репозитория отсутствий
type TimeOffRepository interface {
	ListByStaffAndPeriod(ctx context.Context, businessID, staffID int64, start, end time.Time) ([]*domain.TimeOff, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetBlockingForStaffAndPeriod(ctx context.Context, businessID, staffID int64, start, end time.Time, now time.Time) ([]*domain.Booking, error)
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
