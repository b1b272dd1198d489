package list_staff

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
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/staff
// По умолчанию отдаются только активные сотрудники,
// ?includeInactive=true возвращает всех
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/staff - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	onlyActive := r.URL.Query().Get("includeInactive") != "true"

	result, err := h.service.List(r.Context(), businessID, onlyActive)
	if err != nil {
		h.logger.Error("GET /businesses/{id}/staff - Failed to list staff: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/staff - Staff listed successfully: business_id=%d, count=%d",
		businessID, len(result.Staff))
	handlers.RespondJSON(w, http.StatusOK, result)
}
