package get_service

import (
	"context"

	"github.com/avlebedev/SLB-BookingEngine/internal/service/catalog/models"
)

type CatalogService interface {
	GetService(ctx context.Context, businessID, serviceID int64) (*models.ServiceResponse, error)
}

// AccessChecker проверяет, что пользователь состоит в бизнесе
type AccessChecker interface {
	CheckAccess(ctx context.Context, userID, businessID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
