package domain

import "time"

// TimeOff absence interval [StartAt, EndAt) of a staff member.
// Counts as a busy interval for availability.
type TimeOff struct {
	ID         int64
	BusinessID int64
	StaffID    int64

	StartAt time.Time
	EndAt   time.Time

	Reason *string

	CreatedAt time.Time
}

// Overlaps reports whether the time-off interval intersects [start, end)
func (t *TimeOff) Overlaps(start, end time.Time) bool {
	return t.StartAt.Before(end) && t.EndAt.After(start)
}
