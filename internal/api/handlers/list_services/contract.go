package list_services

import (
	"context"

	"github.com/avlebedev/SLB-BookingEngine/internal/service/catalog/models"
)

type CatalogService interface {
	ListServices(ctx context.Context, businessID int64, onlyActive bool) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
