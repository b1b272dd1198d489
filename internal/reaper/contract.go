package reaper

import "context"

// BookingService помечает истекшие HOLD-бронирования
type BookingService interface {
	ExpireLapsed(ctx context.Context) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
