package www

import (
	"net/http"
	"net/url"
	"slices"
	"strings"

	"fleetdash/fleet"
)

type searchHit struct {
	Kind   string
	Name   string
	Detail string
	Status string
	Href   string
}

// search matches vehicle names and drivers and equipment names. A blank
// term finds nothing.
func (h *Handlers) search(term, scope string) ([]searchHit, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}
	var hits []searchHit
	q := fleet.Query{Search: term}

	if scope == ScopeAll || scope == ScopeVehicles {
		l, err := h.list(fleet.EntityVehicles, q)
		if err != nil {
			return nil, err
		}
		for _, v := range l.Rows.([]fleet.Vehicle) {
			hits = append(hits, searchHit{
				Kind:   "Vehicle",
				Name:   v.Name,
				Detail: v.Driver,
				Status: v.Status,
				Href:   hitHref(fleet.EntityVehicles, v.Name),
			})
		}
	}
	if scope == ScopeAll || scope == ScopeEquipment {
		l, err := h.list(fleet.EntityEquipment, q)
		if err != nil {
			return nil, err
		}
		for _, e := range l.Rows.([]fleet.Equipment) {
			hits = append(hits, searchHit{
				Kind:   "Equipment",
				Name:   e.Name,
				Detail: "Next maintenance " + e.NextMaintenance,
				Status: e.Status,
				Href:   hitHref(fleet.EntityEquipment, e.Name),
			})
		}
	}
	return hits, nil
}

// hitHref links to the entity's page filtered down to name.
func hitHref(entity, name string) string {
	route, ok := RouteFor(entity)
	if !ok {
		return "/dashboard"
	}
	return route.Path + "?q=" + url.QueryEscape(name)
}

func (h *Handlers) handleSearch(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	scope := r.URL.Query().Get("scope")
	if !slices.Contains(searchScopes, scope) {
		scope = ScopeAll
	}

	hits, err := h.search(term, scope)
	if err != nil {
		h.log.Errorf("www: search %q: %v", term, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := h.pageData(r, Route{Path: "/search", Page: "search", Layout: true, Title: "Search"})
	data["Term"] = strings.TrimSpace(term)
	data["Scope"] = scope
	data["Hits"] = hits
	h.render(w, "search.html", data)
}
