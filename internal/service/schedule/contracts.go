package schedule

import (
	"context"
	"time"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
)

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	Upsert(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error)
	GetByStaffAndWeekday(ctx context.Context, businessID, staffID int64, weekday int) (*domain.WorkingHours, error)
	ListByStaff(ctx context.Context, businessID, staffID int64) ([]*domain.WorkingHours, error)
	Delete(ctx context.Context, businessID, staffID int64, weekday int) error
}

// TimeOffRepository интерфейс репозитория отсутствий
type TimeOffRepository interface {
	Create(ctx context.Context, t *domain.TimeOff) (*domain.TimeOff, error)
	ListByStaff(ctx context.Context, businessID, staffID int64) ([]*domain.TimeOff, error)
	ListByStaffAndPeriod(ctx context.Context, businessID, staffID int64, start, end time.Time) ([]*domain.TimeOff, error)
	Delete(ctx context.Context, businessID, id int64) error
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, businessID, id int64) (*domain.Staff, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
