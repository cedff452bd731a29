package www

import (
	"strings"

	"fleetdash/fleet"
)

// Route maps a URL path to a page. Layout pages render inside the sidebar
// and navbar chrome.
type Route struct {
	Path   string `json:"path"`
	Page   string `json:"page"`
	Layout bool   `json:"layout"`
	// Entity is the listing shown on the page, if any.
	Entity string `json:"entity,omitempty"`
	Title  string `json:"title"`
}

var routeTable = []Route{
	{Path: "/", Page: "landing", Title: "Fleet Management"},
	{Path: "/landing", Page: "landing", Title: "Fleet Management"},
	{Path: "/dashboard", Page: "dashboard", Layout: true, Title: "Dashboard"},
	{Path: "/fuel-management", Page: "fuel-management", Layout: true, Entity: fleet.EntityFuel, Title: "Fuel Management"},
	{Path: "/parts-management", Page: "parts-management", Layout: true, Entity: fleet.EntityParts, Title: "Parts Management"},
	{Path: "/vehicle-inspection", Page: "vehicle-inspection", Layout: true, Entity: fleet.EntityInspections, Title: "Vehicle Inspection"},
	{Path: "/issues", Page: "issues", Layout: true, Entity: fleet.EntityIssues, Title: "Issues"},
	{Path: "/fleet-reminders", Page: "fleet-reminders", Layout: true, Entity: fleet.EntityReminders, Title: "Fleet Reminders"},
	{Path: "/vehicle-management", Page: "vehicle-management", Layout: true, Entity: fleet.EntityVehicles, Title: "Vehicle Management"},
	{Path: "/equipment-management", Page: "equipment-management", Layout: true, Entity: fleet.EntityEquipment, Title: "Equipment Management"},
	{Path: "/service-task", Page: "service-task", Layout: true, Entity: fleet.EntityServiceTasks, Title: "Service Tasks"},
	{Path: "/vendor", Page: "vendor", Layout: true, Entity: fleet.EntityVendors, Title: "Vendors"},
	{Path: "/fleet-contacts", Page: "fleet-contacts", Layout: true, Entity: fleet.EntityContacts, Title: "Fleet Contacts"},
	{Path: "/work-orders", Page: "work-orders", Layout: true, Entity: fleet.EntityWorkOrders, Title: "Work Orders"},
}

// Routes returns the route table in lookup order.
func Routes() []Route {
	return append([]Route(nil), routeTable...)
}

// Lookup returns the first route whose path equals path. A trailing slash
// is ignored.
func Lookup(path string) (Route, bool) {
	path = canonicalPath(path)
	for _, r := range routeTable {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// RouteFor returns the page route that lists entity.
func RouteFor(entity string) (Route, bool) {
	for _, r := range routeTable {
		if r.Entity == entity {
			return r, true
		}
	}
	return Route{}, false
}

func canonicalPath(path string) string {
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}
