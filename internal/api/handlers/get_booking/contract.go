package get_booking

import (
	"context"

	"github.com/avlebedev/SLB-BookingEngine/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, businessID, id int64) (*models.BookingResponse, error)
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
