package list_bookings

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
	msgInvalidQuery      = "некорректные параметры фильтра"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
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

// Handle GET /api/v1/businesses/{businessId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/bookings - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /businesses/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.access.CheckAccess(r.Context(), userID, businessID); err != nil {
		if errors.Is(err, business.ErrAccessDenied) {
			h.logger.Warn("GET /businesses/{id}/bookings - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /businesses/{id}/bookings - Failed to check access: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	req, err := ParseQuery(businessID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/bookings - Invalid query: business_id=%d, error=%v", businessID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/bookings - Invalid filter: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /businesses/{id}/bookings - Failed to list bookings: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/bookings - Bookings listed successfully: business_id=%d, count=%d",
		businessID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
