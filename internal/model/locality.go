package model

import (
	"time"

	"github.com/google/uuid"
)

type State struct {
	ID   uuid.UUID
	Name string
}

type District struct {
	ID      uuid.UUID
	StateID uuid.UUID
	Name    string
}

type LocalBody struct {
	ID         uuid.UUID
	DistrictID uuid.UUID
	Name       string
	BodyType   string
}

// RateInfo is the per-local-body billing rate. At most one row per
// local body; absence means the configured default applies.
type RateInfo struct {
	ID          uuid.UUID
	LocalbodyID uuid.UUID
	RatePerKG   float64
}

// CalendarEntry is a pickup date offered by a local body. Existence
// means available; there is no capacity concept.
type CalendarEntry struct {
	ID          uuid.UUID
	LocalbodyID uuid.UUID
	Date        time.Time
}
