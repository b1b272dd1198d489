package list_staff_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlebedev/SLB-BookingEngine/internal/api/handlers"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/catalog"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidStaffID    = "некорректный ID сотрудника"
	msgStaffNotFound     = "сотрудник не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/staff/{staffId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/staff/{staffId}/services - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/staff/{staffId}/services - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	result, err := h.service.ListStaffServices(r.Context(), businessID, staffID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrStaffNotFound):
			h.logger.Warn("GET /businesses/{id}/staff/{staffId}/services - Staff not found: staff_id=%d, business_id=%d", staffID, businessID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/staff/{staffId}/services - Failed to list staff services: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/staff/{staffId}/services - Staff services listed successfully: staff_id=%d, count=%d",
		staffID, len(result.Links))
	handlers.RespondJSON(w, http.StatusOK, result)
}
