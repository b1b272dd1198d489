package domain

import "time"

// Staff represents an employee of a business who can be booked
type Staff struct {
	ID         int64
	BusinessID int64

	FirstName string
	LastName  *string
	Phone     *string
	Email     *string

	// Deactivation hides the staff member from availability queries
	// without deleting booking history
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName возвращает имя с фамилией (если указана)
func (s *Staff) FullName() string {
	if s.LastName == nil || *s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + *s.LastName
}
