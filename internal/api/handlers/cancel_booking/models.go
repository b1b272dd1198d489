package cancel_booking

import (
	"github.com/avlebedev/SLB-BookingEngine/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(businessID, bookingID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		BusinessID: businessID,
		BookingID:  bookingID,
		Reason:     r.Reason,
	}
}
