package customers

import (
	"context"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, businessID, id int64) (*domain.Customer, error)
	ListByBusiness(ctx context.Context, businessID int64, search *string) ([]*domain.Customer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
