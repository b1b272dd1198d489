package get_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlebedev/SLB-BookingEngine/internal/api/handlers"
	"github.com/avlebedev/SLB-BookingEngine/internal/api/middleware"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/business"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/catalog"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidServiceID  = "некорректный ID услуги"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgNotFound          = "услуга не найдена"
)

type Handler struct {
	service CatalogService
	access  AccessChecker
	logger  Logger
}

func NewHandler(service CatalogService, access AccessChecker, logger Logger) *Handler {
	return &Handler{
		service: service,
		access:  access,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/services/{serviceId} - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/services/{serviceId} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /businesses/{id}/services/{serviceId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.access.CheckAccess(r.Context(), userID, businessID); err != nil {
		if errors.Is(err, business.ErrAccessDenied) {
			h.logger.Warn("GET /businesses/{id}/services/{serviceId} - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /businesses/{id}/services/{serviceId} - Failed to check access: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.GetService(r.Context(), businessID, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("GET /businesses/{id}/services/{serviceId} - Service not found: service_id=%d, business_id=%d", serviceID, businessID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/services/{serviceId} - Failed to get service: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/services/{serviceId} - Service retrieved successfully: service_id=%d, business_id=%d",
		serviceID, businessID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
