package update_service

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
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidServiceID   = "некорректный ID услуги"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidInput       = "некорректные данные услуги"
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

// Handle PUT /api/v1/businesses/{businessId}/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/services/{serviceId} - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/services/{serviceId} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /businesses/{id}/services/{serviceId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.access.CheckAccess(r.Context(), userID, businessID); err != nil {
		if errors.Is(err, business.ErrAccessDenied) {
			h.logger.Warn("PUT /businesses/{id}/services/{serviceId} - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("PUT /businesses/{id}/services/{serviceId} - Failed to check access: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	var req UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/services/{serviceId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateService(r.Context(), req.ToServiceRequest(businessID, serviceID))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /businesses/{id}/services/{serviceId} - Service not found: service_id=%d, business_id=%d", serviceID, businessID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /businesses/{id}/services/{serviceId} - Invalid input: service_id=%d, business_id=%d", serviceID, businessID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /businesses/{id}/services/{serviceId} - Failed to update service: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/services/{serviceId} - Service updated successfully: service_id=%d, business_id=%d", serviceID, businessID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
