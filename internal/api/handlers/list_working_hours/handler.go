package list_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlebedev/SLB-BookingEngine/internal/api/handlers"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/schedule"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidStaffID    = "некорректный ID сотрудника"
	msgStaffNotFound     = "сотрудник не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/staff/{staffId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/staff/{staffId}/working-hours - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/staff/{staffId}/working-hours - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	result, err := h.service.ListWorkingHours(r.Context(), businessID, staffID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrStaffNotFound):
			h.logger.Warn("GET /businesses/{id}/staff/{staffId}/working-hours - Staff not found: staff_id=%d, business_id=%d", staffID, businessID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/staff/{staffId}/working-hours - Failed to list working hours: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/staff/{staffId}/working-hours - Working hours listed successfully: staff_id=%d, count=%d",
		staffID, len(result.WorkingHours))
	handlers.RespondJSON(w, http.StatusOK, result)
}
