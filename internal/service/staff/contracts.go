package staff

import (
	"context"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
)

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	Create(ctx context.Context, s *domain.Staff) (*domain.Staff, error)
	GetByID(ctx context.Context, businessID, id int64) (*domain.Staff, error)
	ListByBusiness(ctx context.Context, businessID int64, onlyActive bool) ([]*domain.Staff, error)
	Update(ctx context.Context, businessID, id int64, s *domain.Staff) (*domain.Staff, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
