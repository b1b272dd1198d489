package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avlebedev/SLB-BookingEngine/pkg/types"
)

func tsPtr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func TestWorkingHours_Validate(t *testing.T) {
	tests := []struct {
		name    string
		wh      WorkingHours
		wantErr error
	}{
		{
			name: "valid without break",
			wh:   WorkingHours{Weekday: 0, StartTime: "09:00", EndTime: "18:00"},
		},
		{
			name: "valid with break",
			wh:   WorkingHours{Weekday: 4, StartTime: "09:00", EndTime: "18:00", BreakStart: tsPtr("13:00"), BreakEnd: tsPtr("14:00")},
		},
		{
			name:    "weekday out of range",
			wh:      WorkingHours{Weekday: 7, StartTime: "09:00", EndTime: "18:00"},
			wantErr: ErrInvalidWeekday,
		},
		{
			name:    "negative weekday",
			wh:      WorkingHours{Weekday: -1, StartTime: "09:00", EndTime: "18:00"},
			wantErr: ErrInvalidWeekday,
		},
		{
			name:    "start equals end",
			wh:      WorkingHours{Weekday: 0, StartTime: "09:00", EndTime: "09:00"},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "start after end",
			wh:      WorkingHours{Weekday: 0, StartTime: "18:00", EndTime: "09:00"},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "break start without break end",
			wh:      WorkingHours{Weekday: 0, StartTime: "09:00", EndTime: "18:00", BreakStart: tsPtr("13:00")},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "break outside working day",
			wh:      WorkingHours{Weekday: 0, StartTime: "09:00", EndTime: "18:00", BreakStart: tsPtr("08:00"), BreakEnd: tsPtr("10:00")},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "inverted break",
			wh:      WorkingHours{Weekday: 0, StartTime: "09:00", EndTime: "18:00", BreakStart: tsPtr("14:00"), BreakEnd: tsPtr("13:00")},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "malformed start time",
			wh:      WorkingHours{Weekday: 0, StartTime: "9am", EndTime: "18:00"},
			wantErr: ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.wh.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWeekday(t *testing.T) {
	// 2026-03-16 - понедельник
	monday := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, Weekday(monday))
	assert.Equal(t, 1, Weekday(monday.AddDate(0, 0, 1)))
	assert.Equal(t, 5, Weekday(monday.AddDate(0, 0, 5)))
	assert.Equal(t, 6, Weekday(monday.AddDate(0, 0, 6))) // воскресенье
}
