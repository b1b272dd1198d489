package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tr(startHour, startMin, endHour, endMin int) TimeRange {
	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	return TimeRange{
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{name: "disjoint", a: tr(9, 0, 10, 0), b: tr(11, 0, 12, 0), want: false},
		{name: "touching boundaries do not overlap", a: tr(9, 0, 10, 0), b: tr(10, 0, 11, 0), want: false},
		{name: "partial overlap", a: tr(9, 0, 10, 30), b: tr(10, 0, 11, 0), want: true},
		{name: "containment", a: tr(9, 0, 12, 0), b: tr(10, 0, 11, 0), want: true},
		{name: "identical", a: tr(9, 0, 10, 0), b: tr(9, 0, 10, 0), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestMergeRanges(t *testing.T) {
	merged := MergeRanges([]TimeRange{
		tr(13, 0, 14, 0),
		tr(9, 0, 10, 0),
		tr(9, 30, 11, 0),
		tr(11, 0, 12, 0), // соприкасается с предыдущим - склеивается
	})

	require.Len(t, merged, 2)
	assert.Equal(t, tr(9, 0, 12, 0), merged[0])
	assert.Equal(t, tr(13, 0, 14, 0), merged[1])
}

func TestSubtractRange(t *testing.T) {
	t.Run("break splits the day", func(t *testing.T) {
		out := SubtractRange([]TimeRange{tr(9, 0, 18, 0)}, tr(13, 0, 14, 0))

		require.Len(t, out, 2)
		assert.Equal(t, tr(9, 0, 13, 0), out[0])
		assert.Equal(t, tr(14, 0, 18, 0), out[1])
	})

	t.Run("block covers everything", func(t *testing.T) {
		out := SubtractRange([]TimeRange{tr(9, 0, 18, 0)}, tr(8, 0, 19, 0))
		assert.Empty(t, out)
	})

	t.Run("no intersection", func(t *testing.T) {
		out := SubtractRange([]TimeRange{tr(9, 0, 12, 0)}, tr(13, 0, 14, 0))

		require.Len(t, out, 1)
		assert.Equal(t, tr(9, 0, 12, 0), out[0])
	})
}
