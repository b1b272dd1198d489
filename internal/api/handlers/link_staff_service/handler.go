package link_staff_service

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
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgStaffNotFound      = "сотрудник не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidInput       = "некорректные данные привязки"
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

// Handle POST /api/v1/businesses/{businessId}/staff/{staffId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/staff/{staffId}/services - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/staff/{staffId}/services - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /businesses/{id}/staff/{staffId}/services - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.access.CheckAccess(r.Context(), userID, businessID); err != nil {
		if errors.Is(err, business.ErrAccessDenied) {
			h.logger.Warn("POST /businesses/{id}/staff/{staffId}/services - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("POST /businesses/{id}/staff/{staffId}/services - Failed to check access: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	var req LinkStaffServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/staff/{staffId}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.LinkStaffService(r.Context(), req.ToServiceRequest(businessID, staffID))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrStaffNotFound):
			h.logger.Warn("POST /businesses/{id}/staff/{staffId}/services - Staff not found: staff_id=%d, business_id=%d", staffID, businessID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("POST /businesses/{id}/staff/{staffId}/services - Service not found: service_id=%d, business_id=%d", req.ServiceID, businessID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/staff/{staffId}/services - Invalid input: staff_id=%d, business_id=%d", staffID, businessID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /businesses/{id}/staff/{staffId}/services - Failed to link staff to service: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/staff/{staffId}/services - Staff linked to service successfully: link_id=%d, staff_id=%d, service_id=%d",
		result.ID, staffID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
