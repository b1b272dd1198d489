package domain

import "time"

// Customer belongs to one business; identified and deduplicated by phone
// within the tenant
type Customer struct {
	ID         int64
	BusinessID int64

	Name  string
	Phone string
	Email *string

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
