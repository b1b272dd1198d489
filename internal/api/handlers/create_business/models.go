package create_business

import (
	"github.com/avlebedev/SLB-BookingEngine/internal/service/business/models"
)

// CreateBusinessRequest HTTP request model
type CreateBusinessRequest struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"` // IANA, например "Europe/Berlin"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// Создатель (из заголовка X-User-ID) становится владельцем
func (r *CreateBusinessRequest) ToServiceRequest(ownerUserID int64) *models.CreateBusinessRequest {
	return &models.CreateBusinessRequest{
		OwnerUserID: ownerUserID,
		Name:        r.Name,
		Timezone:    r.Timezone,
	}
}
