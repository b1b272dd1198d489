package list_working_hours

import (
	"context"

	"github.com/avlebedev/SLB-BookingEngine/internal/service/schedule/models"
)

type ScheduleService interface {
	ListWorkingHours(ctx context.Context, businessID, staffID int64) (*models.WorkingHoursListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
