package add_member

import (
	"context"
)

type BusinessService interface {
	AddMember(ctx context.Context, businessID, userID int64) error
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
