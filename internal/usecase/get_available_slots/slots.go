package get_available_slots

import (
	"time"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
)

// workingRangesForDay строит рабочие интервалы сотрудника на дату:
// [начало, конец) рабочего дня за вычетом перерыва
func workingRangesForDay(wh *domain.WorkingHours, date time.Time, loc *time.Location) ([]domain.TimeRange, error) {
	if wh == nil || !wh.IsActive {
		return nil, nil
	}

	dayStart, err := wh.StartTime.OnDate(date, loc)
	if err != nil {
		return nil, err
	}
	dayEnd, err := wh.EndTime.OnDate(date, loc)
	if err != nil {
		return nil, err
	}

	working := []domain.TimeRange{{Start: dayStart, End: dayEnd}}

	if wh.HasBreak() {
		breakStart, err := wh.BreakStart.OnDate(date, loc)
		if err != nil {
			return nil, err
		}
		breakEnd, err := wh.BreakEnd.OnDate(date, loc)
		if err != nil {
			return nil, err
		}
		working = domain.SubtractRange(working, domain.TimeRange{Start: breakStart, End: breakEnd})
	}

	return working, nil
}

// busyRanges собирает занятые интервалы из блокирующих броней и отсутствий
// Блокирующие брони отфильтрованы хранилищем: confirmed и неистекшие hold
func busyRanges(bookings []*domain.Booking, timeOffs []*domain.TimeOff) []domain.TimeRange {
	busy := make([]domain.TimeRange, 0, len(bookings)+len(timeOffs))

	for _, b := range bookings {
		busy = append(busy, domain.TimeRange{Start: b.StartAt, End: b.EndAt})
	}
	for _, t := range timeOffs {
		busy = append(busy, domain.TimeRange{Start: t.StartAt, End: t.EndAt})
	}

	return domain.MergeRanges(busy)
}

// computeDaySlots вычисляет доступные слоты на дату
// Кандидаты нарезаются с шагом длительности услуги от начала каждого
// рабочего интервала (перерыв делит день на два интервала, каждый со
// своей нарезкой). Кандидат отбрасывается, если пересекает занятый
// интервал или начинается раньше now + leadTime. Граничащие интервалы
// пересечением не считаются: бронь до 10:00 не блокирует слот 10:00.
func computeDaySlots(
	wh *domain.WorkingHours,
	bookings []*domain.Booking,
	timeOffs []*domain.TimeOff,
	date time.Time,
	loc *time.Location,
	now time.Time,
	leadTime time.Duration,
	durationMinutes int,
) ([]Slot, error) {
	working, err := workingRangesForDay(wh, date, loc)
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, 0)
	if len(working) == 0 {
		return slots, nil
	}

	busy := busyRanges(bookings, timeOffs)
	duration := time.Duration(durationMinutes) * time.Minute
	earliest := now.Add(leadTime)

	for _, r := range working {
		for start := r.Start; !start.Add(duration).After(r.End); start = start.Add(duration) {
			if start.Before(earliest) {
				continue
			}

			candidate := domain.TimeRange{Start: start, End: start.Add(duration)}
			if overlapsAny(candidate, busy) {
				continue
			}

			slots = append(slots, Slot{StartAt: candidate.Start, EndAt: candidate.End})
		}
	}

	return slots, nil
}

func overlapsAny(candidate domain.TimeRange, busy []domain.TimeRange) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}
