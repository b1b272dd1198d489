package create_booking

import (
	"time"

	createBooking "github.com/avlebedev/SLB-BookingEngine/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StaffID   int64     `json:"staffId"`
	ServiceID int64     `json:"serviceId"`
	StartAt   time.Time `json:"startAt"` // ISO 8601

	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	Comment       *string `json:"comment,omitempty"`

	// Сразу создать confirmed, минуя hold (бронь с ресепшена)
	ConfirmImmediately bool `json:"confirmImmediately,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(businessID int64) *createBooking.Request {
	return &createBooking.Request{
		BusinessID:         businessID,
		StaffID:            r.StaffID,
		ServiceID:          r.ServiceID,
		StartAt:            r.StartAt,
		CustomerName:       r.CustomerName,
		CustomerPhone:      r.CustomerPhone,
		CustomerEmail:      r.CustomerEmail,
		Comment:            r.Comment,
		ConfirmImmediately: r.ConfirmImmediately,
	}
}
