package business

import (
	"context"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	Create(ctx context.Context, b *domain.Business, ownerUserID int64) (*domain.Business, error)
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
	GetMembership(ctx context.Context, userID, businessID int64) (*domain.BusinessUser, error)
	AddMember(ctx context.Context, m *domain.BusinessUser) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
