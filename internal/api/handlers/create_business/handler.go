package create_business

import (
	"errors"
	"net/http"

	"github.com/avlebedev/SLB-BookingEngine/internal/api/handlers"
	"github.com/avlebedev/SLB-BookingEngine/internal/api/middleware"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/business"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidTimezone    = "некорректная таймзона, ожидается имя IANA"
	msgInvalidInput       = "некорректные данные бизнеса"
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

// Handle POST /api/v1/businesses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBusinessRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /businesses - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, business.ErrInvalidTimezone):
			h.logger.Warn("POST /businesses - Invalid timezone: user_id=%d, timezone=%s", userID, req.Timezone)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, business.ErrInvalidInput):
			h.logger.Warn("POST /businesses - Invalid input: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /businesses - Failed to create business: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses - Business created successfully: business_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
