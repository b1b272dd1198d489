package create_service

import (
	"github.com/avlebedev/SLB-BookingEngine/internal/service/catalog/models"
)

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           int64   `json:"price"` // в минимальных единицах валюты
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateServiceRequest) ToServiceRequest(businessID int64) *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		BusinessID:      businessID,
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
	}
}
