package create_booking

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

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	UpsertByPhone(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetBlockingForStaffAndPeriod(ctx context.Context, businessID, staffID int64, start, end time.Time, now time.Time) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
