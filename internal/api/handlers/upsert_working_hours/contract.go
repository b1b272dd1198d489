package upsert_working_hours

import (
	"context"

	"github.com/avlebedev/SLB-BookingEngine/internal/service/schedule/models"
)

type ScheduleService interface {
	UpsertWorkingHours(ctx context.Context, req *models.UpsertWorkingHoursRequest) (*models.WorkingHoursResponse, error)
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
