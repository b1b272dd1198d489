package list_customers

import (
	"context"

	"github.com/avlebedev/SLB-BookingEngine/internal/service/customers/models"
)

type CustomerService interface {
	List(ctx context.Context, businessID int64, search *string) (*models.CustomerListResponse, error)
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
