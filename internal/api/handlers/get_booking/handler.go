package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlebedev/SLB-BookingEngine/internal/api/handlers"
	"github.com/avlebedev/SLB-BookingEngine/internal/api/middleware"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/bookings"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/business"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgNotFound          = "бронирование не найдено"
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

// Handle GET /api/v1/businesses/{businessId}/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/bookings/{bookingId} - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/bookings/{bookingId} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /businesses/{id}/bookings/{bookingId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.access.CheckAccess(r.Context(), userID, businessID); err != nil {
		if errors.Is(err, business.ErrAccessDenied) {
			h.logger.Warn("GET /businesses/{id}/bookings/{bookingId} - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /businesses/{id}/bookings/{bookingId} - Failed to check access: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.GetByID(r.Context(), businessID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /businesses/{id}/bookings/{bookingId} - Booking not found: booking_id=%d, business_id=%d", bookingID, businessID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/bookings/{bookingId} - Failed to get booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/bookings/{bookingId} - Booking retrieved successfully: booking_id=%d, business_id=%d",
		bookingID, businessID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
