package list_staff

import (
	"context"

	"github.com/avlebedev/SLB-BookingEngine/internal/service/staff/models"
)

type StaffService interface {
	List(ctx context.Context, businessID int64, onlyActive bool) (*models.StaffListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
