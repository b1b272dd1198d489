package models

import (
	"time"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
)

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"businessId"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      *string   `json:"email,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CustomerListResponse ответ со списком клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}

	return &CustomerResponse{
		ID:         c.ID,
		BusinessID: c.BusinessID,
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		IsActive:   c.IsActive,
		CreatedAt:  c.CreatedAt,
	}
}

// FromDomainCustomerList конвертирует список domain моделей в DTO
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{
		Customers: make([]CustomerResponse, 0, len(customers)),
	}

	for _, c := range customers {
		if cr := FromDomainCustomer(c); cr != nil {
			resp.Customers = append(resp.Customers, *cr)
		}
	}

	return resp
}
