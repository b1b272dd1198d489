package get_business

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlebedev/SLB-BookingEngine/internal/api/handlers"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/business"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgNotFound          = "бизнес не найден"
)

type Handler struct {
	service BusinessService
	logger  Logger
}

func NewHandler(service BusinessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id} - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	result, err := h.service.GetByID(r.Context(), businessID)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id} - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /businesses/{id} - Failed to get business: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id} - Business retrieved successfully: business_id=%d", businessID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
