package www

import (
	"cmp"
	"net/http"
	"slices"

	"fleetdash/fleet"
)

// views lists the tabs a page offers. The first is the default.
var views = map[string][]string{
	fleet.EntityVehicles:     {"grid", "list", "map"},
	fleet.EntityServiceTasks: {"timeline", "calendar", "list"},
}

func activeView(entity, requested string) string {
	vs := views[entity]
	if len(vs) == 0 {
		return ""
	}
	if slices.Contains(vs, requested) {
		return requested
	}
	return vs[0]
}

// handleListPage serves a page built around one entity listing. A "sort"
// parameter is a header click: it toggles the session sort and redirects
// back without the parameter.
func (h *Handlers) handleListPage(route Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		ui := h.uiState(r)

		if key := params.Get("sort"); key != "" {
			// a column click replaces any preset from the sort selector
			next := withParam(route.Path, params, "sort", "")
			if h.sortable(route.Entity, key) {
				ui.ToggleSort(route.Entity, key)
				if err := ui.save(w, r); err != nil {
					h.log.Warnf("www: save session: %v", err)
				}
				params.Del("by")
				next = withParam(route.Path, params, "sort", "")
			}
			http.Redirect(w, r, next, http.StatusSeeOther)
			return
		}

		q := parseQuery(params, ui.Sort(route.Entity))
		listing, err := h.list(route.Entity, q)
		if err != nil {
			h.log.Errorf("www: list %s: %v", route.Entity, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		data := h.pageData(r, route)
		data["Listing"] = listing
		data["Query"] = q
		data["View"] = activeView(route.Entity, params.Get("view"))
		data["Views"] = views[route.Entity]
		if err := h.addSummary(route.Entity, listing, data); err != nil {
			h.log.Errorf("www: summarize %s: %v", route.Entity, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		h.render(w, route.Page+".html", data)
	}
}

func (h *Handlers) sortable(entity, key string) bool {
	cols, err := h.engine.Catalog().Columns(entity)
	if err != nil {
		return false
	}
	for _, c := range cols {
		if c.Key == key {
			return c.Sortable
		}
	}
	return false
}

// addSummary adds the stat cards shown above a listing. Stats cover the
// whole dataset, not just the filtered rows.
func (h *Handlers) addSummary(entity string, listing *fleet.Listing, data map[string]any) error {
	src := h.engine.Catalog().Source()
	switch entity {
	case fleet.EntityVehicles:
		vs, err := src.Vehicles()
		if err != nil {
			return err
		}
		data["Stats"] = fleet.SummarizeVehicles(vs)
	case fleet.EntityEquipment:
		es, err := src.Equipment()
		if err != nil {
			return err
		}
		data["Stats"] = fleet.SummarizeEquipment(es)
		data["Statuses"] = fleet.EquipmentStatuses
	case fleet.EntityParts:
		ps, err := src.Parts()
		if err != nil {
			return err
		}
		data["Stats"] = fleet.SummarizeParts(ps)
		data["LowStockThreshold"] = fleet.LowStockThreshold
	case fleet.EntityInspections:
		is, err := src.Inspections()
		if err != nil {
			return err
		}
		data["Stats"] = fleet.SummarizeInspections(is)
	case fleet.EntityFuel:
		data["Headlines"] = fleet.FuelHeadlines()
		data["Live"] = h.engine.Live().Snapshot()
	case fleet.EntityVendors:
		data["Headlines"] = fleet.VendorHeadlines()
		data["Live"] = h.engine.Live().Snapshot()
	case fleet.EntityServiceTasks:
		if tasks, ok := listing.Rows.([]fleet.ServiceTask); ok {
			data["Calendar"] = groupTasksByDate(tasks)
		}
	}
	return nil
}

// taskDay is one calendar cell: the tasks due on a date, in listing order.
type taskDay struct {
	Date  string
	Tasks []fleet.ServiceTask
}

func groupTasksByDate(tasks []fleet.ServiceTask) []taskDay {
	var days []taskDay
	index := make(map[string]int)
	for _, t := range tasks {
		i, ok := index[t.Date]
		if !ok {
			i = len(days)
			index[t.Date] = i
			days = append(days, taskDay{Date: t.Date})
		}
		days[i].Tasks = append(days[i].Tasks, t)
	}
	slices.SortStableFunc(days, func(a, b taskDay) int { return cmp.Compare(a.Date, b.Date) })
	return days
}
