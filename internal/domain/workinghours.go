package domain

import (
	"errors"
	"time"

	"github.com/avlebedev/SLB-BookingEngine/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при weekday вне диапазона [0..6]
	ErrInvalidWeekday = errors.New("domain: weekday must be in [0..6]")

	// ErrInvalidRange возвращается при некорректных границах рабочего дня или перерыва
	ErrInvalidRange = errors.New("domain: invalid time range")
)

// WorkingHours recurring weekly availability of a staff member for one
// weekday, with an optional break window. At most one effective entry
// exists per (staff, weekday) - upserts replace, never accumulate.
type WorkingHours struct {
	ID         int64
	BusinessID int64
	StaffID    int64

	Weekday int // 0 = Monday .. 6 = Sunday

	StartTime types.TimeString
	EndTime   types.TimeString

	// Both set or both nil
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBreak возвращает true, если задан перерыв
func (w *WorkingHours) HasBreak() bool {
	return w.BreakStart != nil && w.BreakEnd != nil
}

// Validate проверяет инварианты записи:
// weekday в [0..6], start < end, перерыв (если есть) внутри [start, end]
func (w *WorkingHours) Validate() error {
	if w.Weekday < 0 || w.Weekday > 6 {
		return ErrInvalidWeekday
	}

	if err := w.StartTime.Validate(); err != nil {
		return errors.Join(ErrInvalidRange, err)
	}
	if err := w.EndTime.Validate(); err != nil {
		return errors.Join(ErrInvalidRange, err)
	}
	if !w.StartTime.IsBefore(w.EndTime) {
		return ErrInvalidRange
	}

	// Перерыв: либо обе границы, либо ни одной
	if (w.BreakStart == nil) != (w.BreakEnd == nil) {
		return ErrInvalidRange
	}
	if w.HasBreak() {
		if err := w.BreakStart.Validate(); err != nil {
			return errors.Join(ErrInvalidRange, err)
		}
		if err := w.BreakEnd.Validate(); err != nil {
			return errors.Join(ErrInvalidRange, err)
		}
		if !w.BreakStart.IsBefore(*w.BreakEnd) {
			return ErrInvalidRange
		}
		// Перерыв должен лежать внутри рабочего дня
		if w.BreakStart.IsBefore(w.StartTime) || w.BreakEnd.IsAfter(w.EndTime) {
			return ErrInvalidRange
		}
	}

	return nil
}

// Weekday converts time.Weekday (Sunday = 0) to the storage convention
// (Monday = 0 .. Sunday = 6)
func Weekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 6
	}
	return wd - 1
}
