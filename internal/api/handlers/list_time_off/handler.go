package list_time_off

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlebedev/SLB-BookingEngine/internal/api/handlers"
	"github.com/avlebedev/SLB-BookingEngine/internal/api/middleware"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/business"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/schedule"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidStaffID    = "некорректный ID сотрудника"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgStaffNotFound     = "сотрудник не найден"
)

type Handler struct {
	service ScheduleService
	access  AccessChecker
	logger  Logger
}

func NewHandler(service ScheduleService, access AccessChecker, logger Logger) *Handler {
	return &Handler{
		service: service,
		access:  access,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/staff/{staffId}/time-off
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/staff/{staffId}/time-off - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/staff/{staffId}/time-off - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /businesses/{id}/staff/{staffId}/time-off - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.access.CheckAccess(r.Context(), userID, businessID); err != nil {
		if errors.Is(err, business.ErrAccessDenied) {
			h.logger.Warn("GET /businesses/{id}/staff/{staffId}/time-off - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /businesses/{id}/staff/{staffId}/time-off - Failed to check access: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.ListTimeOff(r.Context(), businessID, staffID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrStaffNotFound):
			h.logger.Warn("GET /businesses/{id}/staff/{staffId}/time-off - Staff not found: staff_id=%d, business_id=%d", staffID, businessID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/staff/{staffId}/time-off - Failed to list time off: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/staff/{staffId}/time-off - Time off listed successfully: staff_id=%d, count=%d",
		staffID, len(result.TimeOff))
	handlers.RespondJSON(w, http.StatusOK, result)
}
