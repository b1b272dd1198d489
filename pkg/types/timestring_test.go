package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "09:00"},
		{name: "valid midnight", input: "00:00"},
		{name: "valid end of day", input: "23:59"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minute", input: "10:60", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("10:30")

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:45")

	shifted, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "10:15", shifted.String())

	// Переход через полночь не поддерживается
	_, err = TimeString("23:50").AddMinutes(30)
	require.Error(t, err)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("18:00"))
	assert.False(t, TimeString("18:00").IsBefore("09:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("09:30").OnDate(date, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 16, 9, 30, 0, 0, loc), got)
}
