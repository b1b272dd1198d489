package update_staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlebedev/SLB-BookingEngine/internal/api/handlers"
	"github.com/avlebedev/SLB-BookingEngine/internal/api/middleware"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/business"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/staff"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgStaffNotFound      = "сотрудник не найден"
	msgInvalidInput       = "некорректные данные сотрудника"
)

type Handler struct {
	service StaffService
	access  AccessChecker
	logger  Logger
}

func NewHandler(service StaffService, access AccessChecker, logger Logger) *Handler {
	return &Handler{
		service: service,
		access:  access,
		logger:  logger,
	}
}

// Handle PUT /api/v1/businesses/{businessId}/staff/{staffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/staff/{staffId} - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/staff/{staffId} - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /businesses/{id}/staff/{staffId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.access.CheckAccess(r.Context(), userID, businessID); err != nil {
		if errors.Is(err, business.ErrAccessDenied) {
			h.logger.Warn("PUT /businesses/{id}/staff/{staffId} - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("PUT /businesses/{id}/staff/{staffId} - Failed to check access: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	var req UpdateStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/staff/{staffId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(businessID, staffID))
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrStaffNotFound):
			h.logger.Warn("PUT /businesses/{id}/staff/{staffId} - Staff not found: staff_id=%d, business_id=%d", staffID, businessID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("PUT /businesses/{id}/staff/{staffId} - Invalid input: staff_id=%d, business_id=%d", staffID, businessID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /businesses/{id}/staff/{staffId} - Failed to update staff: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/staff/{staffId} - Staff updated successfully: staff_id=%d, business_id=%d", staffID, businessID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
