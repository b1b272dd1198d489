package create_service

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
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
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

// Handle POST /api/v1/businesses/{businessId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/services - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /businesses/{id}/services - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.access.CheckAccess(r.Context(), userID, businessID); err != nil {
		if errors.Is(err, business.ErrAccessDenied) {
			h.logger.Warn("POST /businesses/{id}/services - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("POST /businesses/{id}/services - Failed to check access: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateService(r.Context(), req.ToServiceRequest(businessID))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/services - Invalid input: business_id=%d", businessID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /businesses/{id}/services - Failed to create service: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/services - Service created successfully: service_id=%d, business_id=%d", result.ID, businessID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
