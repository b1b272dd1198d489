package update_staff

import (
	"context"

	"github.com/avlebedev/SLB-BookingEngine/internal/service/staff/models"
)

type StaffService interface {
	Update(ctx context.Context, req *models.UpdateStaffRequest) (*models.StaffResponse, error)
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
