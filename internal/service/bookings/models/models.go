package models

import (
	"errors"
	"time"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ConfirmBookingRequest запрос на подтверждение hold
type ConfirmBookingRequest struct {
	BusinessID int64 `json:"businessId"`
	BookingID  int64 `json:"bookingId"`
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	BusinessID int64   `json:"businessId"`
	BookingID  int64   `json:"bookingId"`
	Reason     *string `json:"reason,omitempty"`
}

// ListBookingsRequest запрос на получение бронирований бизнеса
type ListBookingsRequest struct {
	BusinessID int64      `json:"businessId"`
	StaffID    *int64     `json:"staffId,omitempty"`
	CustomerID *int64     `json:"customerId,omitempty"`
	From       *time.Time `json:"from,omitempty"`
	To         *time.Time `json:"to,omitempty"`
	Status     *string    `json:"status,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		BusinessID: r.BusinessID,
		StaffID:    r.StaffID,
		CustomerID: r.CustomerID,
		From:       r.From,
		To:         r.To,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64  `json:"id"`
	BusinessID      int64  `json:"businessId"`
	StaffID         int64  `json:"staffId"`
	StaffServiceID  int64  `json:"staffServiceId"`
	CustomerID      int64  `json:"customerId"`
	StartAt         string `json:"startAt"` // ISO 8601
	EndAt           string `json:"endAt"`   // ISO 8601
	Price           int64  `json:"price"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	ExpiresAt *string `json:"expiresAt,omitempty"` // ISO 8601, только для hold

	CustomerName string  `json:"customerName"`
	Comment      *string `json:"comment,omitempty"`

	CancelReason *string `json:"cancelReason,omitempty"`
	CancelledAt  *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		BusinessID:      b.BusinessID,
		StaffID:         b.StaffID,
		StaffServiceID:  b.StaffServiceID,
		CustomerID:      b.CustomerID,
		StartAt:         b.StartAt.Format(time.RFC3339),
		EndAt:           b.EndAt.Format(time.RFC3339),
		Price:           b.Price,
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		CustomerName:    b.CustomerName,
		Comment:         b.Comment,
		CancelReason:    b.CancelReason,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.ExpiresAt != nil {
		expiresStr := b.ExpiresAt.Format(time.RFC3339)
		resp.ExpiresAt = &expiresStr
	}
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusHold,
		domain.StatusConfirmed,
		domain.StatusCancelled,
		domain.StatusExpired,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
