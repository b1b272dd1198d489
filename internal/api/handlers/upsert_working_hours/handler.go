package upsert_working_hours

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
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgStaffNotFound      = "сотрудник не найден"
	msgInvalidWeekday     = "некорректный день недели, ожидается 0 (понедельник) .. 6 (воскресенье)"
	msgInvalidTimeRange   = "некорректный временной интервал, ожидается HH:MM и начало раньше конца"
	msgInvalidInput       = "некорректные данные расписания"
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

// Handle PUT /api/v1/businesses/{businessId}/staff/{staffId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/staff/{staffId}/working-hours - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/staff/{staffId}/working-hours - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /businesses/{id}/staff/{staffId}/working-hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.access.CheckAccess(r.Context(), userID, businessID); err != nil {
		if errors.Is(err, business.ErrAccessDenied) {
			h.logger.Warn("PUT /businesses/{id}/staff/{staffId}/working-hours - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("PUT /businesses/{id}/staff/{staffId}/working-hours - Failed to check access: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	var req UpsertWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/staff/{staffId}/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertWorkingHours(r.Context(), req.ToServiceRequest(businessID, staffID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrStaffNotFound):
			h.logger.Warn("PUT /businesses/{id}/staff/{staffId}/working-hours - Staff not found: staff_id=%d, business_id=%d", staffID, businessID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, schedule.ErrInvalidWeekday):
			h.logger.Warn("PUT /businesses/{id}/staff/{staffId}/working-hours - Invalid weekday: staff_id=%d, weekday=%d", staffID, req.Weekday)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("PUT /businesses/{id}/staff/{staffId}/working-hours - Invalid time range: staff_id=%d, weekday=%d", staffID, req.Weekday)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /businesses/{id}/staff/{staffId}/working-hours - Invalid input: staff_id=%d", staffID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /businesses/{id}/staff/{staffId}/working-hours - Failed to upsert working hours: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/staff/{staffId}/working-hours - Working hours upserted successfully: staff_id=%d, weekday=%d",
		staffID, req.Weekday)
	handlers.RespondJSON(w, http.StatusOK, result)
}
