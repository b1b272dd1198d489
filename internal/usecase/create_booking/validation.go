package create_booking

import (
	"fmt"
	"time"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}

	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment is too long", ErrInvalidInput)
	}

	return nil
}

// validateLeadTime проверяет минимальное время до начала брони
func validateLeadTime(startAt, now time.Time, leadTimeMinutes int) error {
	if startAt.Before(now.Add(time.Duration(leadTimeMinutes) * time.Minute)) {
		return fmt.Errorf("%w: booking must start at least %d minutes from now", ErrTooLateToBook, leadTimeMinutes)
	}
	return nil
}

// validateHorizon проверяет горизонт бронирования
func validateHorizon(startAt, now time.Time, horizonDays int) error {
	if horizonDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, horizonDays)

	startDateOnly := time.Date(startAt.Year(), startAt.Month(), startAt.Day(), 0, 0, 0, 0, now.Location())

	if startDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, horizonDays)
	}

	return nil
}

// validateWithinWorkingHours проверяет, что интервал [start, end) целиком
// лежит внутри рабочего дня сотрудника и не задевает перерыв
func validateWithinWorkingHours(wh *domain.WorkingHours, start, end time.Time, loc *time.Location) error {
	if wh == nil || !wh.IsActive {
		return ErrOutsideWorkingHours
	}

	dayStart, err := wh.StartTime.OnDate(start.In(loc), loc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	dayEnd, err := wh.EndTime.OnDate(start.In(loc), loc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	working := []domain.TimeRange{{Start: dayStart, End: dayEnd}}

	if wh.HasBreak() {
		breakStart, err := wh.BreakStart.OnDate(start.In(loc), loc)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		breakEnd, err := wh.BreakEnd.OnDate(start.In(loc), loc)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		working = domain.SubtractRange(working, domain.TimeRange{Start: breakStart, End: breakEnd})
	}

	for _, r := range working {
		if !start.Before(r.Start) && !end.After(r.End) {
			return nil
		}
	}

	return ErrOutsideWorkingHours
}
