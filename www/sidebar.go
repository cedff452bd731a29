package www

import "strings"

// MenuItem is one sidebar entry. Path has no leading slash.
type MenuItem struct {
	Name string
	Icon string
	Path string
}

func (m MenuItem) Href() string { return "/" + m.Path }

var menu = []MenuItem{
	{Name: "Dashboard", Icon: "home", Path: "dashboard"},
	{Name: "Vehicles", Icon: "truck", Path: "vehicle-management"},
	{Name: "Equipment", Icon: "tool", Path: "equipment-management"},
	{Name: "Inspections", Icon: "clipboard", Path: "vehicle-inspection"},
	{Name: "Issues", Icon: "alert-triangle", Path: "issues"},
	{Name: "Reminders", Icon: "bell", Path: "fleet-reminders"},
	{Name: "Service", Icon: "settings", Path: "service-task"},
	{Name: "Work Orders", Icon: "file-text", Path: "work-orders"},
	{Name: "Contacts", Icon: "users", Path: "fleet-contacts"},
	{Name: "Vendors", Icon: "briefcase", Path: "vendor"},
	{Name: "Fuel", Icon: "droplet", Path: "fuel-management"},
	{Name: "Parts", Icon: "package", Path: "parts-management"},
}

// Menu returns the sidebar entries in display order.
func Menu() []MenuItem {
	return append([]MenuItem(nil), menu...)
}

// Sidebar is the rendered state of the sidebar for one request.
type Sidebar struct {
	Items   []MenuItem
	Active  string
	Open    bool
	Account Account
}

type Account struct {
	Name string
	Role string
}

// NewSidebar marks the item whose path matches routePath as active.
func NewSidebar(routePath string, open bool) Sidebar {
	return Sidebar{
		Items:   Menu(),
		Active:  ActiveItem(routePath),
		Open:    open,
		Account: Account{Name: "Fleet Master", Role: "Admin"},
	}
}

// ActiveItem returns the name of the menu item for routePath, or "".
func ActiveItem(routePath string) string {
	p := strings.TrimPrefix(canonicalPath(routePath), "/")
	for _, m := range menu {
		if m.Path == p {
			return m.Name
		}
	}
	return ""
}

// Search scopes offered by the navbar.
const (
	ScopeAll       = "all"
	ScopeVehicles  = "vehicles"
	ScopeEquipment = "equipment"
)

var searchScopes = []string{ScopeAll, ScopeVehicles, ScopeEquipment}
