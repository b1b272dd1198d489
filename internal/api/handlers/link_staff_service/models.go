package link_staff_service

import (
	"github.com/avlebedev/SLB-BookingEngine/internal/service/catalog/models"
)

// LinkStaffServiceRequest HTTP request model
// Переопределения nil означают "брать из услуги"
type LinkStaffServiceRequest struct {
	ServiceID        int64  `json:"serviceId"`
	PriceOverride    *int64 `json:"priceOverride,omitempty"`
	DurationOverride *int   `json:"durationOverride,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *LinkStaffServiceRequest) ToServiceRequest(businessID, staffID int64) *models.LinkStaffServiceRequest {
	return &models.LinkStaffServiceRequest{
		BusinessID:       businessID,
		StaffID:          staffID,
		ServiceID:        r.ServiceID,
		PriceOverride:    r.PriceOverride,
		DurationOverride: r.DurationOverride,
	}
}
