package cancel_booking

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlebedev/SLB-BookingEngine/internal/api/handlers"
	"github.com/avlebedev/SLB-BookingEngine/internal/api/middleware"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/bookings"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/business"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgNotFound           = "бронирование не найдено"
	msgCannotCancel       = "бронирование нельзя отменить из текущего статуса"
)

type Handler struct {
	service BookingService
	access  AccessChecker
	logger  Logger
}

func NewHandler(service BookingService, access AccessChecker, logger Logger) *Handler {
	return &Handler{
		service: service,
		access:  access,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/bookings/{bookingId}/cancel - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/bookings/{bookingId}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /businesses/{id}/bookings/{bookingId}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.access.CheckAccess(r.Context(), userID, businessID); err != nil {
		if errors.Is(err, business.ErrAccessDenied) {
			h.logger.Warn("POST /businesses/{id}/bookings/{bookingId}/cancel - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("POST /businesses/{id}/bookings/{bookingId}/cancel - Failed to check access: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	// Тело опционально: причина отмены может отсутствовать
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /businesses/{id}/bookings/{bookingId}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Cancel(r.Context(), req.ToServiceRequest(businessID, bookingID)); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /businesses/{id}/bookings/{bookingId}/cancel - Booking not found: booking_id=%d, business_id=%d", bookingID, businessID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("POST /businesses/{id}/bookings/{bookingId}/cancel - Cannot cancel: booking_id=%d, business_id=%d", bookingID, businessID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("POST /businesses/{id}/bookings/{bookingId}/cancel - Failed to cancel booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/bookings/{bookingId}/cancel - Booking cancelled successfully: booking_id=%d, business_id=%d",
		bookingID, businessID)
	w.WriteHeader(http.StatusNoContent)
}
