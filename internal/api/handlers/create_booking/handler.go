package create_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlebedev/SLB-BookingEngine/internal/api/handlers"
	createBooking "github.com/avlebedev/SLB-BookingEngine/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidBusinessID   = "некорректный ID бизнеса"
	msgBusinessNotFound    = "бизнес не найден"
	msgStaffNotFound       = "сотрудник не найден"
	msgServiceNotFound     = "услуга не найдена"
	msgServiceNotLinked    = "сотрудник не оказывает эту услугу"
	msgOutsideWorkingHours = "интервал вне рабочих часов сотрудника"
	msgSlotConflict        = "выбранный временной слот уже занят"
	msgTooLateToBook       = "слишком поздно для бронирования этого слота"
	msgDateTooFar          = "дата бронирования слишком далеко в будущем"
	msgInvalidInput        = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/bookings - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(businessID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/{id}/bookings - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createBooking.ErrStaffNotFound):
			h.logger.Warn("POST /businesses/{id}/bookings - Staff not found: staff_id=%d, business_id=%d", req.StaffID, businessID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /businesses/{id}/bookings - Service not found: service_id=%d, business_id=%d", req.ServiceID, businessID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceNotLinked):
			h.logger.Warn("POST /businesses/{id}/bookings - Service not linked: staff_id=%d, service_id=%d", req.StaffID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotLinked)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /businesses/{id}/bookings - Outside working hours: staff_id=%d, start_at=%s", req.StaffID, req.StartAt)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /businesses/{id}/bookings - Slot conflict: staff_id=%d, start_at=%s", req.StaffID, req.StartAt)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /businesses/{id}/bookings - Too late to book: staff_id=%d, start_at=%s", req.StaffID, req.StartAt)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /businesses/{id}/bookings - Date too far in future: business_id=%d, start_at=%s", businessID, req.StartAt)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/bookings - Invalid input: business_id=%d", businessID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /businesses/{id}/bookings - Failed to create booking: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/bookings - Booking created successfully: booking_id=%d, business_id=%d, staff_id=%d, status=%s",
		result.ID, businessID, req.StaffID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
