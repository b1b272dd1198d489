package update_staff

import (
	"github.com/avlebedev/SLB-BookingEngine/internal/service/staff/models"
)

// UpdateStaffRequest HTTP request model
type UpdateStaffRequest struct {
	FirstName string  `json:"firstName"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	IsActive  bool    `json:"isActive"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStaffRequest) ToServiceRequest(businessID, staffID int64) *models.UpdateStaffRequest {
	return &models.UpdateStaffRequest{
		BusinessID: businessID,
		StaffID:    staffID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Phone:      r.Phone,
		Email:      r.Email,
		IsActive:   r.IsActive,
	}
}
