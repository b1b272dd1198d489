package get_business

import (
	"context"

	"github.com/avlebedev/SLB-BookingEngine/internal/service/business/models"
)

type BusinessService interface {
	GetByID(ctx context.Context, businessID int64) (*models.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
