package www

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	r, ok := Lookup("/dashboard")
	require.True(t, ok)
	assert.Equal(t, "dashboard", r.Page)
	assert.True(t, r.Layout)

	r, ok = Lookup("/work-orders/")
	require.True(t, ok)
	assert.Equal(t, "/work-orders", r.Path)

	for _, p := range []string{"/", "/landing"} {
		r, ok = Lookup(p)
		require.True(t, ok, p)
		assert.Equal(t, "landing", r.Page)
		assert.False(t, r.Layout)
	}

	_, ok = Lookup("/reports")
	assert.False(t, ok)
}

func TestEveryLayoutRouteHasMenuItem(t *testing.T) {
	for _, r := range Routes() {
		if !r.Layout {
			continue
		}
		assert.NotEmpty(t, ActiveItem(r.Path), r.Path)
	}
}

func TestRouteFor(t *testing.T) {
	r, ok := RouteFor("service-tasks")
	require.True(t, ok)
	assert.Equal(t, "/service-task", r.Path)

	_, ok = RouteFor("drivers")
	assert.False(t, ok)
}

func TestActiveItem(t *testing.T) {
	assert.Equal(t, "Vehicles", ActiveItem("/vehicle-management"))
	assert.Equal(t, "Parts", ActiveItem("/parts-management/"))
	assert.Equal(t, "", ActiveItem("/landing"))
	assert.Equal(t, "", ActiveItem("/"))
}

func TestMenuOrder(t *testing.T) {
	var names []string
	for _, m := range Menu() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{
		"Dashboard", "Vehicles", "Equipment", "Inspections", "Issues", "Reminders",
		"Service", "Work Orders", "Contacts", "Vendors", "Fuel", "Parts",
	}, names)

	sb := NewSidebar("/fuel-management", false)
	assert.Equal(t, "Fuel", sb.Active)
	assert.False(t, sb.Open)
	assert.Equal(t, Account{Name: "Fleet Master", Role: "Admin"}, sb.Account)
}
