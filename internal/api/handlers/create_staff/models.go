package create_staff

import (
	"github.com/avlebedev/SLB-BookingEngine/internal/service/staff/models"
)

// CreateStaffRequest HTTP request model
type CreateStaffRequest struct {
	FirstName string  `json:"firstName"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateStaffRequest) ToServiceRequest(businessID int64) *models.CreateStaffRequest {
	return &models.CreateStaffRequest{
		BusinessID: businessID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Phone:      r.Phone,
		Email:      r.Email,
	}
}
