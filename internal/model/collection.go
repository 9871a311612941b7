package model

import (
	"time"

	"github.com/google/uuid"
)

// WasteCollection is one completed pickup recorded by a collector.
// Localbody, ward and the address fields are free-text snapshots copied
// at creation, not references, so later reference-data edits cannot
// rewrite billing history. RatePerKG and TotalAmount are fixed when the
// record is created and never re-resolved.
type WasteCollection struct {
	ID          uuid.UUID
	CollectorID uuid.UUID
	CustomerID  uuid.UUID
	Localbody   string
	Ward        string
	Location    string
	BuildingNo  string
	StreetName  string
	KG          float64
	RatePerKG   float64
	TotalAmount float64
	PhotoPath   *string
	CreatedAt   time.Time
}
