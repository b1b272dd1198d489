package update_service

import (
	"github.com/avlebedev/SLB-BookingEngine/internal/service/catalog/models"
)

// UpdateServiceRequest HTTP request model
type UpdateServiceRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           int64   `json:"price"`
	IsActive        bool    `json:"isActive"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateServiceRequest) ToServiceRequest(businessID, serviceID int64) *models.UpdateServiceRequest {
	return &models.UpdateServiceRequest{
		BusinessID:      businessID,
		ServiceID:       serviceID,
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		IsActive:        r.IsActive,
	}
}
