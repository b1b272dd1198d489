package domain

import "time"

// Business represents a tenant. Every other entity belongs to exactly one
// business and every operation is scoped by its id.
type Business struct {
	ID       int64
	Name     string
	Timezone string // IANA name, e.g. "Europe/Berlin"
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location resolves the business timezone, falling back to UTC
func (b *Business) Location() *time.Location {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// BusinessRole роль пользователя внутри бизнеса
type BusinessRole string

const (
	RoleOwner BusinessRole = "owner"
	RoleAdmin BusinessRole = "admin"
)

// BusinessUser membership of a user in a business with a role
type BusinessUser struct {
	UserID     int64
	BusinessID int64
	Role       BusinessRole
}
