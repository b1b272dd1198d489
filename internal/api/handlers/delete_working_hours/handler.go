package delete_working_hours

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
	msgInvalidBusinessID    = "некорректный ID бизнеса"
	msgInvalidStaffID       = "некорректный ID сотрудника"
	msgInvalidWeekday       = "некорректный день недели, ожидается 0 (понедельник) .. 6 (воскресенье)"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
	msgStaffNotFound        = "сотрудник не найден"
	msgWorkingHoursNotFound = "расписание на этот день не найдено"
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

// Handle DELETE /api/v1/businesses/{businessId}/staff/{staffId}/working-hours/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/staff/{staffId}/working-hours/{weekday} - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/staff/{staffId}/working-hours/{weekday} - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	weekday, err := strconv.Atoi(vars["weekday"])
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/staff/{staffId}/working-hours/{weekday} - Invalid weekday: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeekday)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /businesses/{id}/staff/{staffId}/working-hours/{weekday} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.access.CheckAccess(r.Context(), userID, businessID); err != nil {
		if errors.Is(err, business.ErrAccessDenied) {
			h.logger.Warn("DELETE /businesses/{id}/staff/{staffId}/working-hours/{weekday} - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("DELETE /businesses/{id}/staff/{staffId}/working-hours/{weekday} - Failed to check access: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := h.service.DeleteWorkingHours(r.Context(), businessID, staffID, weekday); err != nil {
		switch {
		case errors.Is(err, schedule.ErrStaffNotFound):
			h.logger.Warn("DELETE /businesses/{id}/staff/{staffId}/working-hours/{weekday} - Staff not found: staff_id=%d, business_id=%d", staffID, businessID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, schedule.ErrWorkingHoursNotFound):
			h.logger.Warn("DELETE /businesses/{id}/staff/{staffId}/working-hours/{weekday} - Working hours not found: staff_id=%d, weekday=%d", staffID, weekday)
			handlers.RespondNotFound(w, msgWorkingHoursNotFound)

		case errors.Is(err, schedule.ErrInvalidWeekday):
			h.logger.Warn("DELETE /businesses/{id}/staff/{staffId}/working-hours/{weekday} - Invalid weekday: staff_id=%d, weekday=%d", staffID, weekday)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		default:
			h.logger.Error("DELETE /businesses/{id}/staff/{staffId}/working-hours/{weekday} - Failed to delete working hours: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /businesses/{id}/staff/{staffId}/working-hours/{weekday} - Working hours deleted successfully: staff_id=%d, weekday=%d",
		staffID, weekday)
	w.WriteHeader(http.StatusNoContent)
}
