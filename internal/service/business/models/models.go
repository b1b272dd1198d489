package models

import (
	"time"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
)

// CreateBusinessRequest запрос на создание бизнеса
// Создатель становится владельцем
type CreateBusinessRequest struct {
	OwnerUserID int64  `json:"ownerUserId"`
	Name        string `json:"name"`
	Timezone    string `json:"timezone"` // IANA, например "Europe/Berlin"
}

// BusinessResponse ответ с данными бизнеса
type BusinessResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Timezone  string    `json:"timezone"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainBusiness конвертирует domain модель в DTO
func FromDomainBusiness(b *domain.Business) *BusinessResponse {
	if b == nil {
		return nil
	}

	return &BusinessResponse{
		ID:        b.ID,
		Name:      b.Name,
		Timezone:  b.Timezone,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
	}
}
