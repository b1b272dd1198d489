package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlebedev/SLB-BookingEngine/internal/domain"
	"github.com/avlebedev/SLB-BookingEngine/pkg/types"
)

func breakAt(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func workingHours(start, end string) *domain.WorkingHours {
	return &domain.WorkingHours{
		StaffID:   1,
		Weekday:   0,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		IsActive:  true,
	}
}

func TestComputeDaySlots_FullWindow(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, loc)
	now := date.Add(-24 * time.Hour) // запрос накануне, lead time не мешает

	slots, err := computeDaySlots(workingHours("09:00", "12:00"), nil, nil, date, loc, now, time.Hour, 30)
	require.NoError(t, err)

	// 09:00 09:30 10:00 10:30 11:00 11:30
	require.Len(t, slots, 6)
	assert.Equal(t, date.Add(9*time.Hour), slots[0].StartAt)
	assert.Equal(t, date.Add(9*time.Hour+30*time.Minute), slots[0].EndAt)
	assert.Equal(t, date.Add(11*time.Hour+30*time.Minute), slots[5].StartAt)
}

func TestComputeDaySlots_BookedSlotExcluded(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, loc)
	now := date.Add(-24 * time.Hour)

	booked := []*domain.Booking{
		{StartAt: date.Add(10 * time.Hour), EndAt: date.Add(10*time.Hour + 30*time.Minute), Status: domain.StatusConfirmed},
	}

	slots, err := computeDaySlots(workingHours("09:00", "12:00"), booked, nil, date, loc, now, time.Hour, 30)
	require.NoError(t, err)

	require.Len(t, slots, 5)
	for _, s := range slots {
		assert.NotEqual(t, date.Add(10*time.Hour), s.StartAt)
	}

	// Граничащие слоты остаются: бронь до 10:30 не блокирует слот 10:30
	assert.Equal(t, date.Add(10*time.Hour+30*time.Minute), slots[2].StartAt)
}

func TestComputeDaySlots_BreakSplitsDay(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, loc)
	now := date.Add(-24 * time.Hour)

	wh := workingHours("09:00", "18:00")
	wh.BreakStart = breakAt("13:00")
	wh.BreakEnd = breakAt("14:00")

	slots, err := computeDaySlots(wh, nil, nil, date, loc, now, time.Hour, 60)
	require.NoError(t, err)

	// 09-13 дает 4 слота, 14-18 дает 4 слота
	require.Len(t, slots, 8)
	assert.Equal(t, date.Add(12*time.Hour), slots[3].StartAt)
	assert.Equal(t, date.Add(14*time.Hour), slots[4].StartAt)
}

func TestComputeDaySlots_BreakCoversWholeDay(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, loc)
	now := date.Add(-24 * time.Hour)

	wh := workingHours("09:00", "12:00")
	wh.BreakStart = breakAt("09:00")
	wh.BreakEnd = breakAt("12:00")

	slots, err := computeDaySlots(wh, nil, nil, date, loc, now, time.Hour, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeDaySlots_ServiceLongerThanWindow(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, loc)
	now := date.Add(-24 * time.Hour)

	slots, err := computeDaySlots(workingHours("09:00", "10:00"), nil, nil, date, loc, now, time.Hour, 90)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeDaySlots_LeadTimeCutsSameDay(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, loc)

	// Сейчас 09:10, lead time час: первый доступный слот не раньше 10:10.
	// Нарезка не сдвигается - слот 10:30, а не 10:10.
	now := date.Add(9*time.Hour + 10*time.Minute)

	slots, err := computeDaySlots(workingHours("09:00", "12:00"), nil, nil, date, loc, now, time.Hour, 30)
	require.NoError(t, err)

	require.Len(t, slots, 3)
	assert.Equal(t, date.Add(10*time.Hour+30*time.Minute), slots[0].StartAt)
	assert.Equal(t, date.Add(11*time.Hour), slots[1].StartAt)
	assert.Equal(t, date.Add(11*time.Hour+30*time.Minute), slots[2].StartAt)
}

func TestComputeDaySlots_TimeOffBlocks(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, loc)
	now := date.Add(-24 * time.Hour)

	timeOffs := []*domain.TimeOff{
		{StartAt: date.Add(9 * time.Hour), EndAt: date.Add(11 * time.Hour)},
	}

	slots, err := computeDaySlots(workingHours("09:00", "12:00"), nil, timeOffs, date, loc, now, time.Hour, 30)
	require.NoError(t, err)

	require.Len(t, slots, 2)
	assert.Equal(t, date.Add(11*time.Hour), slots[0].StartAt)
	assert.Equal(t, date.Add(11*time.Hour+30*time.Minute), slots[1].StartAt)
}

func TestComputeDaySlots_InactiveWorkingHours(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, loc)
	now := date.Add(-24 * time.Hour)

	wh := workingHours("09:00", "12:00")
	wh.IsActive = false

	slots, err := computeDaySlots(wh, nil, nil, date, loc, now, time.Hour, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}
