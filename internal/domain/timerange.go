package domain

import (
	"sort"
	"time"
)

// TimeRange полуинтервал [Start, End). Правая граница не включается -
// граничащие интервалы не пересекаются.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// IsValid возвращает true, если Start строго раньше End
func (r TimeRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// Overlaps проверяет реальное пересечение с other (границы не считаются)
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// MergeRanges сортирует и склеивает пересекающиеся/соприкасающиеся интервалы
func MergeRanges(ranges []TimeRange) []TimeRange {
	if len(ranges) == 0 {
		return nil
	}

	sorted := make([]TimeRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].End.Before(sorted[j].End)
		}
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []TimeRange{sorted[0]}
	for _, cur := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !cur.Start.After(last.End) {
			if cur.End.After(last.End) {
				last.End = cur.End
			}
		} else {
			merged = append(merged, cur)
		}
	}
	return merged
}

// SubtractRange вычитает block из каждого интервала ranges
func SubtractRange(ranges []TimeRange, block TimeRange) []TimeRange {
	var out []TimeRange
	for _, r := range ranges {
		out = append(out, subtractOne(r, block)...)
	}
	return MergeRanges(out)
}

func subtractOne(a, b TimeRange) []TimeRange {
	// Нет пересечения - интервал остается как есть
	if !b.End.After(a.Start) || !b.Start.Before(a.End) {
		return []TimeRange{a}
	}

	var res []TimeRange
	if b.Start.After(a.Start) {
		res = append(res, TimeRange{Start: a.Start, End: b.Start})
	}
	if b.End.Before(a.End) {
		res = append(res, TimeRange{Start: b.End, End: a.End})
	}
	return res
}
