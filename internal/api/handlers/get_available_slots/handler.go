package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/avlebedev/SLB-BookingEngine/internal/api/handlers"
	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	getAvailableSlots "github.com/avlebedev/SLB-BookingEngine/internal/usecase/get_available_slots"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidStaffID    = "некорректный параметр staffId"
	msgInvalidServiceID  = "некорректный параметр serviceId"
	msgInvalidDate       = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgBusinessNotFound  = "бизнес не найден"
	msgStaffNotFound     = "сотрудник не найден"
	msgServiceNotFound   = "услуга не найдена"
	msgServiceNotLinked  = "сотрудник не оказывает эту услугу"
	msgDateTooFar        = "дата слишком далеко в будущем"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/slots?staffId=&serviceId=&date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/slots - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	query := r.URL.Query()

	staffID, err := strconv.ParseInt(query.Get("staffId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/slots - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	serviceID, err := strconv.ParseInt(query.Get("serviceId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		BusinessID: businessID,
		StaffID:    staffID,
		ServiceID:  serviceID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/slots - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getAvailableSlots.ErrStaffNotFound):
			h.logger.Warn("GET /businesses/{id}/slots - Staff not found: staff_id=%d, business_id=%d", staffID, businessID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /businesses/{id}/slots - Service not found: service_id=%d, business_id=%d", serviceID, businessID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotLinked):
			h.logger.Warn("GET /businesses/{id}/slots - Service not linked: staff_id=%d, service_id=%d", staffID, serviceID)
			handlers.RespondBadRequest(w, msgServiceNotLinked)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /businesses/{id}/slots - Date too far in future: business_id=%d, date=%s", businessID, query.Get("date"))
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/slots - Invalid input: business_id=%d", businessID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /businesses/{id}/slots - Failed to get available slots: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/slots - Slots retrieved successfully: business_id=%d, staff_id=%d, service_id=%d, count=%d",
		businessID, staffID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
