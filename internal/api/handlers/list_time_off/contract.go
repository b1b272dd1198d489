package list_time_off

import (
	"context"

	"github.com/avlebedev/SLB-BookingEngine/internal/service/schedule/models"
)

type ScheduleService interface {
	ListTimeOff(ctx context.Context, businessID, staffID int64) (*models.TimeOffListResponse, error)
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
