package list_services

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlebedev/SLB-BookingEngine/internal/api/handlers"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
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

// Handle GET /api/v1/businesses/{businessId}/services
// По умолчанию отдаются только активные услуги,
// ?includeInactive=true возвращает все
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/services - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	onlyActive := r.URL.Query().Get("includeInactive") != "true"

	result, err := h.service.ListServices(r.Context(), businessID, onlyActive)
	if err != nil {
		h.logger.Error("GET /businesses/{id}/services - Failed to list services: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/services - Services listed successfully: business_id=%d, count=%d",
		businessID, len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
