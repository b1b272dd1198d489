package get_customer

import (
	"context"

	"github.com/avlebedev/SLB-BookingEngine/internal/service/customers/models"
)

type CustomersService interface {
	GetByID(ctx context.Context, businessID, customerID int64) (*models.CustomerResponse, error)
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
