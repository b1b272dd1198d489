package domain

import (
	"time"

	"github.com/avlebedev/SLB-BookingEngine/pkg/ptr"
)

// Service represents a bookable service of a business with canonical
// duration and price. Independent of staff until linked.
type Service struct {
	ID         int64
	BusinessID int64

	Name        string
	Description *string

	DurationMinutes int
	Price           int64 // minor currency units

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StaffService links a staff member to a service they offer,
// with optional per-staff price/duration overrides
type StaffService struct {
	ID         int64
	BusinessID int64
	StaffID    int64
	ServiceID  int64

	// nil override falls back to the service default
	PriceOverride    *int64
	DurationOverride *int

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Offering is the resolved duration/price to use when booking a
// (staff, service) pair
type Offering struct {
	StaffServiceID  int64
	StaffID         int64
	ServiceID       int64
	DurationMinutes int
	Price           int64
}

// ResolveOffering applies the link overrides over the service defaults
func ResolveOffering(link *StaffService, svc *Service) Offering {
	return Offering{
		StaffServiceID:  link.ID,
		StaffID:         link.StaffID,
		ServiceID:       svc.ID,
		DurationMinutes: ptr.Deref(link.DurationOverride, svc.DurationMinutes),
		Price:           ptr.Deref(link.PriceOverride, svc.Price),
	}
}
