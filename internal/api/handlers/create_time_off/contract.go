package create_time_off

import (
	"context"

	"github.com/avlebedev/SLB-BookingEngine/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateTimeOff(ctx context.Context, req *models.CreateTimeOffRequest) (*models.TimeOffResponse, error)
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
