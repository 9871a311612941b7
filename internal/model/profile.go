package model

import (
	"time"

	"github.com/google/uuid"
)

type ProfileStatus string

const (
	ProfileStatusActive   ProfileStatus = "ACTIVE"
	ProfileStatusInactive ProfileStatus = "INACTIVE"
)

// WasteProfile is a customer's pickup profile. Latitude and longitude
// are either both set or both nil, never one alone.
type WasteProfile struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	FullName            string
	SecondaryNumber     string
	PickupAddress       string
	Landmark            string
	Latitude            *float64
	Longitude           *float64
	StateID             uuid.UUID
	DistrictID          uuid.UUID
	LocalbodyID         uuid.UUID
	Ward                string
	NumberOfBags        int
	WasteType           string
	Comments            string
	Pincode             string
	Status              ProfileStatus
	AssignedCollectorID *uuid.UUID
	CreatedAt           time.Time
}

func (p *WasteProfile) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// LocationHistory is an append-only audit row written whenever a
// profile's coordinates are first set or materially change.
type LocationHistory struct {
	ID             uuid.UUID
	WasteProfileID uuid.UUID
	Latitude       float64
	Longitude      float64
	ChangedBy      uuid.UUID
	ChangedAt      time.Time
}

// PickupSelection links a customer, optionally scoped to one profile,
// to a single calendar entry. The store allows at most one per customer.
type PickupSelection struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	WasteProfileID *uuid.UUID
	CalendarID     uuid.UUID
	CreatedAt      time.Time
}
