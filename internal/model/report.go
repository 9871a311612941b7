package model

import "time"

// LocalbodyStat is one grouped row of the billing summary, keyed by the
// localbody snapshot stored on the collection records.
type LocalbodyStat struct {
	Localbody       string
	TotalWeightKG   float64
	TotalRevenue    float64
	CollectionCount int64
}

// BillingSummary aggregates the collections of one period, grouped by
// localbody and ordered by revenue descending. Localities without
// records in the period do not appear.
type BillingSummary struct {
	PeriodStart     time.Time
	PeriodEnd       time.Time
	TotalWeightKG   float64
	TotalRevenue    float64
	CollectionCount int64
	Localbodies     []LocalbodyStat
}
