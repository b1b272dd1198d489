package catalog

import (
	"context"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, businessID, id int64) (*domain.Service, error)
	ListByBusiness(ctx context.Context, businessID int64, onlyActive bool) ([]*domain.Service, error)
	Update(ctx context.Context, businessID, id int64, s *domain.Service) (*domain.Service, error)
}

// StaffLinkRepository интерфейс репозитория связок сотрудник-услуга
type StaffLinkRepository interface {
	Upsert(ctx context.Context, link *domain.StaffService) (*domain.StaffService, error)
	GetByStaffAndService(ctx context.Context, businessID, staffID, serviceID int64) (*domain.StaffService, error)
	ListByStaff(ctx context.Context, businessID, staffID int64) ([]*domain.StaffService, error)
	Deactivate(ctx context.Context, businessID, id int64) error
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
