package unlink_staff_service

import "context"

type CatalogService interface {
	UnlinkStaffService(ctx context.Context, businessID, linkID int64) error
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
