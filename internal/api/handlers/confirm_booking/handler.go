package confirm_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlebedev/SLB-BookingEngine/internal/api/handlers"
	"github.com/avlebedev/SLB-BookingEngine/internal/api/middleware"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/bookings"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/bookings/models"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/business"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgNotFound          = "бронирование не найдено"
	msgHoldExpired       = "срок удержания слота истек"
	msgInvalidTransition = "бронирование нельзя подтвердить из текущего статуса"
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

// Handle POST /api/v1/businesses/{businessId}/bookings/{bookingId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/bookings/{bookingId}/confirm - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/bookings/{bookingId}/confirm - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /businesses/{id}/bookings/{bookingId}/confirm - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.access.CheckAccess(r.Context(), userID, businessID); err != nil {
		if errors.Is(err, business.ErrAccessDenied) {
			h.logger.Warn("POST /businesses/{id}/bookings/{bookingId}/confirm - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("POST /businesses/{id}/bookings/{bookingId}/confirm - Failed to check access: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.Confirm(r.Context(), &models.ConfirmBookingRequest{
		BusinessID: businessID,
		BookingID:  bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /businesses/{id}/bookings/{bookingId}/confirm - Booking not found: booking_id=%d, business_id=%d", bookingID, businessID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrHoldExpired):
			h.logger.Warn("POST /businesses/{id}/bookings/{bookingId}/confirm - Hold expired: booking_id=%d, business_id=%d", bookingID, businessID)
			handlers.RespondError(w, http.StatusGone, msgHoldExpired)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("POST /businesses/{id}/bookings/{bookingId}/confirm - Invalid transition: booking_id=%d, business_id=%d", bookingID, businessID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("POST /businesses/{id}/bookings/{bookingId}/confirm - Failed to confirm booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/bookings/{bookingId}/confirm - Booking confirmed successfully: booking_id=%d, business_id=%d",
		bookingID, businessID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
