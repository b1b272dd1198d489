package models

import (
	"time"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	BusinessID      int64   `json:"businessId"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           int64   `json:"price"`
}

// UpdateServiceRequest запрос на обновление услуги
type UpdateServiceRequest struct {
	BusinessID      int64   `json:"businessId"`
	ServiceID       int64   `json:"serviceId"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           int64   `json:"price"`
	IsActive        bool    `json:"isActive"`
}

// LinkStaffServiceRequest запрос на привязку сотрудника к услуге
type LinkStaffServiceRequest struct {
	BusinessID       int64  `json:"businessId"`
	StaffID          int64  `json:"staffId"`
	ServiceID        int64  `json:"serviceId"`
	PriceOverride    *int64 `json:"priceOverride,omitempty"`
	DurationOverride *int   `json:"durationOverride,omitempty"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64     `json:"id"`
	BusinessID      int64     `json:"businessId"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           int64     `json:"price"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// StaffServiceResponse ответ с данными связки сотрудник-услуга
type StaffServiceResponse struct {
	ID               int64     `json:"id"`
	BusinessID       int64     `json:"businessId"`
	StaffID          int64     `json:"staffId"`
	ServiceID        int64     `json:"serviceId"`
	PriceOverride    *int64    `json:"priceOverride,omitempty"`
	DurationOverride *int      `json:"durationOverride,omitempty"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
}

// StaffServiceListResponse ответ со списком связок
type StaffServiceListResponse struct {
	Links []StaffServiceResponse `json:"links"`
}

// OfferingResponse итоговые длительность и цена для пары (сотрудник, услуга)
type OfferingResponse struct {
	StaffServiceID  int64 `json:"staffServiceId"`
	StaffID         int64 `json:"staffId"`
	ServiceID       int64 `json:"serviceId"`
	DurationMinutes int   `json:"durationMinutes"`
	Price           int64 `json:"price"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		BusinessID:      s.BusinessID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, s := range services {
		if sr := FromDomainService(s); sr != nil {
			resp.Services = append(resp.Services, *sr)
		}
	}

	return resp
}

// FromDomainStaffService конвертирует domain модель связки в DTO
func FromDomainStaffService(link *domain.StaffService) *StaffServiceResponse {
	if link == nil {
		return nil
	}

	return &StaffServiceResponse{
		ID:               link.ID,
		BusinessID:       link.BusinessID,
		StaffID:          link.StaffID,
		ServiceID:        link.ServiceID,
		PriceOverride:    link.PriceOverride,
		DurationOverride: link.DurationOverride,
		IsActive:         link.IsActive,
		CreatedAt:        link.CreatedAt,
	}
}

// FromDomainStaffServiceList конвертирует список связок в DTO
func FromDomainStaffServiceList(links []*domain.StaffService) *StaffServiceListResponse {
	resp := &StaffServiceListResponse{
		Links: make([]StaffServiceResponse, 0, len(links)),
	}

	for _, link := range links {
		if lr := FromDomainStaffService(link); lr != nil {
			resp.Links = append(resp.Links, *lr)
		}
	}

	return resp
}

// FromDomainOffering конвертирует domain модель в DTO
func FromDomainOffering(o domain.Offering) *OfferingResponse {
	return &OfferingResponse{
		StaffServiceID:  o.StaffServiceID,
		StaffID:         o.StaffID,
		ServiceID:       o.ServiceID,
		DurationMinutes: o.DurationMinutes,
		Price:           o.Price,
	}
}
