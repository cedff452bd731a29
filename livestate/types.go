package livestate

import (
	"maps"
	"slices"
	"time"

	"fleetdash/fleet"
)

const (
	FuelSeriesLen   = 7
	VendorSeriesLen = 12
)

// Point is one labelled value on a fuel card chart.
type Point struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Snapshot is the current value of every live widget. A snapshot is never
// modified after it is published.
type Snapshot struct {
	Seq          uint64             `json:"seq"`
	UpdatedAt    time.Time          `json:"updated_at"`
	Assignments  []fleet.Assignment `json:"assignments"`
	FuelSeries   map[string][]Point `json:"fuel_series"`
	VendorSeries map[string][]int   `json:"vendor_series"`
}

func (s *Snapshot) clone() *Snapshot {
	cp := *s
	cp.Assignments = slices.Clone(s.Assignments)
	cp.FuelSeries = maps.Clone(s.FuelSeries)
	for k, v := range cp.FuelSeries {
		cp.FuelSeries[k] = slices.Clone(v)
	}
	cp.VendorSeries = maps.Clone(s.VendorSeries)
	for k, v := range cp.VendorSeries {
		cp.VendorSeries[k] = slices.Clone(v)
	}
	return &cp
}

// Max returns the largest value in a vendor series, at least 1.
func Max(series []int) int {
	m := 1
	for _, v := range series {
		m = max(m, v)
	}
	return m
}
