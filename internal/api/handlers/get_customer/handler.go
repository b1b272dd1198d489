package get_customer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlebedev/SLB-BookingEngine/internal/api/handlers"
	"github.com/avlebedev/SLB-BookingEngine/internal/api/middleware"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/business"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/customers"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidCustomerID = "некорректный ID клиента"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgNotFound          = "клиент не найден"
)

type Handler struct {
	service CustomersService
	access  AccessChecker
	logger  Logger
}

func NewHandler(service CustomersService, access AccessChecker, logger Logger) *Handler {
	return &Handler{
		service: service,
		access:  access,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/customers/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/customers/{customerId} - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	customerID, err := strconv.ParseInt(vars["customerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/customers/{customerId} - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /businesses/{id}/customers/{customerId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.access.CheckAccess(r.Context(), userID, businessID); err != nil {
		if errors.Is(err, business.ErrAccessDenied) {
			h.logger.Warn("GET /businesses/{id}/customers/{customerId} - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /businesses/{id}/customers/{customerId} - Failed to check access: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.GetByID(r.Context(), businessID, customerID)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("GET /businesses/{id}/customers/{customerId} - Customer not found: customer_id=%d, business_id=%d", customerID, businessID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/customers/{customerId} - Failed to get customer: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/customers/{customerId} - Customer retrieved successfully: customer_id=%d, business_id=%d",
		customerID, businessID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
