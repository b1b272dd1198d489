package models

import (
	"time"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
)

// Request модели

// CreateStaffRequest запрос на создание сотрудника
type CreateStaffRequest struct {
	BusinessID int64   `json:"businessId"`
	FirstName  string  `json:"firstName"`
	LastName   *string `json:"lastName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
}

// UpdateStaffRequest запрос на обновление сотрудника
type UpdateStaffRequest struct {
	BusinessID int64   `json:"businessId"`
	StaffID    int64   `json:"staffId"`
	FirstName  string  `json:"firstName"`
	LastName   *string `json:"lastName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	IsActive   bool    `json:"isActive"`
}

// Response модели

// StaffResponse ответ с данными сотрудника
type StaffResponse struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"businessId"`
	FirstName  string    `json:"firstName"`
	LastName   *string   `json:"lastName,omitempty"`
	FullName   string    `json:"fullName"`
	Phone      *string   `json:"phone,omitempty"`
	Email      *string   `json:"email,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// StaffListResponse ответ со списком сотрудников
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// Методы конвертации

// FromDomainStaff конвертирует domain модель в DTO
func FromDomainStaff(s *domain.Staff) *StaffResponse {
	if s == nil {
		return nil
	}

	return &StaffResponse{
		ID:         s.ID,
		BusinessID: s.BusinessID,
		FirstName:  s.FirstName,
		LastName:   s.LastName,
		FullName:   s.FullName(),
		Phone:      s.Phone,
		Email:      s.Email,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// FromDomainStaffList конвертирует список domain моделей в DTO
func FromDomainStaffList(staff []*domain.Staff) *StaffListResponse {
	resp := &StaffListResponse{
		Staff: make([]StaffResponse, 0, len(staff)),
	}

	for _, s := range staff {
		if sr := FromDomainStaff(s); sr != nil {
			resp.Staff = append(resp.Staff, *sr)
		}
	}

	return resp
}
