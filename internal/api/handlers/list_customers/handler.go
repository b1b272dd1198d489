package list_customers

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
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	service CustomerService
	access  AccessChecker
	logger  Logger
}

func NewHandler(service CustomerService, access AccessChecker, logger Logger) *Handler {
	return &Handler{
		service: service,
		access:  access,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/customers
// ?search= фильтрует по имени (подстрока) или телефону (префикс)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/customers - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /businesses/{id}/customers - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.access.CheckAccess(r.Context(), userID, businessID); err != nil {
		if errors.Is(err, business.ErrAccessDenied) {
			h.logger.Warn("GET /businesses/{id}/customers - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /businesses/{id}/customers - Failed to check access: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	var search *string
	if s := r.URL.Query().Get("search"); s != "" {
		search = &s
	}

	result, err := h.service.List(r.Context(), businessID, search)
	if err != nil {
		h.logger.Error("GET /businesses/{id}/customers - Failed to list customers: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/customers - Customers listed successfully: business_id=%d, count=%d",
		businessID, len(result.Customers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
