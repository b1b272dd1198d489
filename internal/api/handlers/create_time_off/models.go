package create_time_off

import (
	"time"

	"github.com/avlebedev/SLB-BookingEngine/internal/service/schedule/models"
)

// CreateTimeOffRequest HTTP request model
type CreateTimeOffRequest struct {
	StartAt time.Time `json:"startAt"` // ISO 8601
	EndAt   time.Time `json:"endAt"`   // ISO 8601
	Reason  *string   `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateTimeOffRequest) ToServiceRequest(businessID, staffID int64) *models.CreateTimeOffRequest {
	return &models.CreateTimeOffRequest{
		BusinessID: businessID,
		StaffID:    staffID,
		StartAt:    r.StartAt,
		EndAt:      r.EndAt,
		Reason:     r.Reason,
	}
}
