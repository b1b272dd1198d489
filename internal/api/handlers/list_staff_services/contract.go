package list_staff_services

import (
	"context"

	"github.com/avlebedev/SLB-BookingEngine/internal/service/catalog/models"
)

type CatalogService interface {
	ListStaffServices(ctx context.Context, businessID, staffID int64) (*models.StaffServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
