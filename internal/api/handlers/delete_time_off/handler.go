package delete_time_off

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
	msgInvalidTimeOffID  = "некорректный ID отсутствия"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgTimeOffNotFound   = "отсутствие не найдено"
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

// Handle DELETE /api/v1/businesses/{businessId}/time-off/{timeOffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/time-off/{timeOffId} - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	timeOffID, err := strconv.ParseInt(vars["timeOffId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/time-off/{timeOffId} - Invalid time off ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeOffID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /businesses/{id}/time-off/{timeOffId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.access.CheckAccess(r.Context(), userID, businessID); err != nil {
		if errors.Is(err, business.ErrAccessDenied) {
			h.logger.Warn("DELETE /businesses/{id}/time-off/{timeOffId} - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("DELETE /businesses/{id}/time-off/{timeOffId} - Failed to check access: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := h.service.DeleteTimeOff(r.Context(), businessID, timeOffID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrTimeOffNotFound):
			h.logger.Warn("DELETE /businesses/{id}/time-off/{timeOffId} - Time off not found: time_off_id=%d, business_id=%d", timeOffID, businessID)
			handlers.RespondNotFound(w, msgTimeOffNotFound)

		default:
			h.logger.Error("DELETE /businesses/{id}/time-off/{timeOffId} - Failed to delete time off: time_off_id=%d, error=%v", timeOffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /businesses/{id}/time-off/{timeOffId} - Time off deleted successfully: time_off_id=%d, business_id=%d",
		timeOffID, businessID)
	w.WriteHeader(http.StatusNoContent)
}
