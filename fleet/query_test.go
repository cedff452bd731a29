package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names[T any](t *testing.T, l *Listing, name func(T) string) []string {
	t.Helper()
	rows, ok := l.Rows.([]T)
	require.True(t, ok, "rows have type %T", l.Rows)
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = name(r)
	}
	return out
}

func equipmentName(e Equipment) string { return e.Name }
func vehicleName(v Vehicle) string     { return v.Name }

func TestEquipmentSearchExc(t *testing.T) {
	c := NewCatalog(NewMemorySource(nil))

	l, err := c.List(EntityEquipment, Query{Search: "Exc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Excavator XL2000"}, names(t, l, equipmentName))
	assert.Equal(t, 5, l.Total)
	assert.Equal(t, 1, l.Count)
	assert.True(t, l.Partial())
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	c := NewCatalog(NewMemorySource(nil))

	l, err := c.List(EntityEquipment, Query{Search: "  cRaNe "})
	require.NoError(t, err)
	assert.Equal(t, []string{"Crane C500"}, names(t, l, equipmentName))
}

func TestVehicleSearchMatchesDriver(t *testing.T) {
	c := NewCatalog(NewMemorySource(nil))

	l, err := c.List(EntityVehicles, Query{Search: "jane"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Van 203"}, names(t, l, vehicleName))
}

func TestFiltersCompose(t *testing.T) {
	c := NewCatalog(NewMemorySource(nil))

	l, err := c.List(EntityVehicles, Query{Filters: map[string]string{"status": "In Use"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Van 203", "Motorcycle 501"}, names(t, l, vehicleName))

	l, err = c.List(EntityVehicles, Query{Filters: map[string]string{"status": "In Use", "type": "Van"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Van 203"}, names(t, l, vehicleName))

	l, err = c.List(EntityVehicles, Query{Filters: map[string]string{"status": "All", "type": "All"}})
	require.NoError(t, err)
	assert.Equal(t, 5, l.Count)
	assert.False(t, l.Partial())
}

func TestFiltersMatchExactly(t *testing.T) {
	c := NewCatalog(NewMemorySource(nil))

	l, err := c.List(EntityVehicles, Query{Filters: map[string]string{"status": "available"}})
	require.NoError(t, err)
	assert.True(t, l.Empty())

	l, err = c.List(EntityVehicles, Query{Filters: map[string]string{"status": "all"}})
	require.NoError(t, err)
	assert.True(t, l.Empty())

	name := func(v Vendor) string { return v.Name }
	l, err = c.List(EntityVendors, Query{Filters: map[string]string{"type": "TIRES"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"TireMaster Co."}, names(t, l, name))

	l, err = c.List(EntityVendors, Query{Filters: map[string]string{"type": "all"}})
	require.NoError(t, err)
	assert.Equal(t, 5, l.Count)
}

func TestNoResults(t *testing.T) {
	c := NewCatalog(NewMemorySource(nil))

	l, err := c.List(EntityParts, Query{Search: "flux capacitor"})
	require.NoError(t, err)
	assert.True(t, l.Empty())
	assert.False(t, l.Partial())
	assert.Empty(t, l.Records)
}

func TestSortToggle(t *testing.T) {
	var s SortState
	s = s.Toggle("name")
	assert.Equal(t, SortState{Key: "name", Direction: Ascending}, s)
	s = s.Toggle("name")
	assert.Equal(t, SortState{Key: "name", Direction: Descending}, s)
	s = s.Toggle("name")
	assert.Equal(t, SortState{Key: "name", Direction: Ascending}, s)
	s = s.Toggle("health")
	assert.Equal(t, SortState{Key: "health", Direction: Ascending}, s)
}

func TestSortClicks(t *testing.T) {
	c := NewCatalog(NewMemorySource(nil))
	var s SortState

	s = s.Toggle("name")
	l, err := c.List(EntityEquipment, Query{Sort: s})
	require.NoError(t, err)
	ascending := names(t, l, equipmentName)
	assert.Equal(t, []string{"Bulldozer B2000", "Crane C500", "Excavator XL2000", "Forklift F100", "Generator G1000"}, ascending)

	s = s.Toggle("name")
	l, err = c.List(EntityEquipment, Query{Sort: s})
	require.NoError(t, err)
	assert.Equal(t, []string{"Generator G1000", "Forklift F100", "Excavator XL2000", "Crane C500", "Bulldozer B2000"}, names(t, l, equipmentName))

	s = s.Toggle("name")
	l, err = c.List(EntityEquipment, Query{Sort: s})
	require.NoError(t, err)
	assert.Equal(t, ascending, names(t, l, equipmentName))
}

func TestSortNumericColumn(t *testing.T) {
	c := NewCatalog(NewMemorySource(nil))

	l, err := c.List(EntityEquipment, Query{Sort: SortState{Key: "utilization", Direction: Descending}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Generator G1000", "Excavator XL2000", "Crane C500", "Bulldozer B2000", "Forklift F100"}, names(t, l, equipmentName))

	l, err = c.List(EntityParts, Query{Sort: SortState{Key: "price", Direction: Ascending}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Spark Plugs", "Oil Filter", "Windshield Wipers", "Air Filter", "Brake Pads"},
		names(t, l, func(p Part) string { return p.Name }))
}

func TestUnknownSortKeepsDatasetOrder(t *testing.T) {
	c := NewCatalog(NewMemorySource(nil))

	l, err := c.List(EntityEquipment, Query{Sort: SortState{Key: "bogus", Direction: Descending}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Excavator XL2000", "Forklift F100", "Crane C500", "Bulldozer B2000", "Generator G1000"}, names(t, l, equipmentName))
}

func TestWorkOrderSelector(t *testing.T) {
	c := NewCatalog(NewMemorySource(nil))
	title := func(w WorkOrder) string { return w.Title }

	l, err := c.List(EntityWorkOrders, Query{By: "due"})
	require.NoError(t, err)
	got := names(t, l, title)
	assert.Equal(t, "Engine Diagnostics - Fleet A", got[0])
	assert.Equal(t, "Annual Maintenance - Fleet D", got[len(got)-1])

	l, err = c.List(EntityWorkOrders, Query{By: "created"})
	require.NoError(t, err)
	assert.Equal(t, "Oil Change - Fleet A", names(t, l, title)[0])
	assert.Len(t, l.Selectors, 3)
}

func TestVendorSelectorAndFilter(t *testing.T) {
	c := NewCatalog(NewMemorySource(nil))
	name := func(v Vendor) string { return v.Name }

	l, err := c.List(EntityVendors, Query{By: "spent"})
	require.NoError(t, err)
	assert.Equal(t, "FleetFuel Inc.", names(t, l, name)[0])

	l, err = c.List(EntityVendors, Query{Filters: map[string]string{"type": "tires"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"TireMaster Co."}, names(t, l, name))

	l, err = c.List(EntityVendors, Query{Search: "fuel"})
	require.NoError(t, err)
	assert.Equal(t, []string{"FleetFuel Inc."}, names(t, l, name))
}

func TestUnknownEntity(t *testing.T) {
	c := NewCatalog(NewMemorySource(nil))

	_, err := c.List("spaceships", Query{})
	require.ErrorIs(t, err, ErrUnknownEntity)
}

func TestListingMetadata(t *testing.T) {
	c := NewCatalog(NewMemorySource(nil))

	l, err := c.List(EntityReminders, Query{Filters: map[string]string{"priority": "High"}})
	require.NoError(t, err)
	require.Len(t, l.Filters, 3)
	assert.Equal(t, "All", l.Filters[0].Options[0])
	assert.Equal(t, "High", l.Filters[1].Active)
	assert.Equal(t, "All", l.Filters[2].Active)
	require.Len(t, l.Records, 2)
	assert.Equal(t, "Truck Inspection Due", l.Records[0][0])
}

func TestParseSortState(t *testing.T) {
	tests := []struct {
		in   string
		want SortState
	}{
		{"name:ascending", SortState{Key: "name", Direction: Ascending}},
		{"health:descending", SortState{Key: "health", Direction: Descending}},
		{"name:sideways", SortState{}},
		{"name", SortState{}},
		{"", SortState{}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := ParseSortState(tc.in)
			assert.Equal(t, tc.want, got)
			if got.Key != "" {
				assert.Equal(t, tc.in, got.String())
			}
		})
	}
}

func TestArrow(t *testing.T) {
	s := SortState{Key: "name", Direction: Descending}
	assert.Equal(t, "↓", s.Arrow("name"))
	assert.Equal(t, "", s.Arrow("status"))
	assert.Equal(t, "↑", s.Toggle("status").Arrow("status"))
}
