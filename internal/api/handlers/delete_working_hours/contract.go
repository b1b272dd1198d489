package delete_working_hours

import "context"

type ScheduleService interface {
	DeleteWorkingHours(ctx context.Context, businessID, staffID int64, weekday int) error
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
