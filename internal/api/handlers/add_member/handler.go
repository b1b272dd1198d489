package add_member

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlebedev/SLB-BookingEngine/internal/api/handlers"
	"github.com/avlebedev/SLB-BookingEngine/internal/api/middleware"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/business"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidUserID      = "некорректный ID пользователя"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgBusinessNotFound   = "бизнес не найден"
)

type Handler struct {
	service BusinessService
	access  AccessChecker
	logger  Logger
}

func NewHandler(service BusinessService, access AccessChecker, logger Logger) *Handler {
	return &Handler{
		service: service,
		access:  access,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/members
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/members - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /businesses/{id}/members - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.access.CheckAccess(r.Context(), userID, businessID); err != nil {
		if errors.Is(err, business.ErrAccessDenied) {
			h.logger.Warn("POST /businesses/{id}/members - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("POST /businesses/{id}/members - Failed to check access: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	var req AddMemberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/members - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.UserID <= 0 {
		h.logger.Warn("POST /businesses/{id}/members - Invalid member user ID: %d", req.UserID)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	if err := h.service.AddMember(r.Context(), businessID, req.UserID); err != nil {
		switch {
		case errors.Is(err, business.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/{id}/members - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("POST /businesses/{id}/members - Failed to add member: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/members - Member added successfully: business_id=%d, member_user_id=%d",
		businessID, req.UserID)
	w.WriteHeader(http.StatusNoContent)
}
