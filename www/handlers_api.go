package www

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.einride.tech/aip/ordering"

	"fleetdash/fleet"
)

func (h *Handlers) apiRoutes(w http.ResponseWriter, r *http.Request) {
	h.jsonOK(w, Routes())
}

func (h *Handlers) apiMenu(w http.ResponseWriter, r *http.Request) {
	h.jsonOK(w, Menu())
}

func (h *Handlers) apiLive(w http.ResponseWriter, r *http.Request) {
	h.jsonOK(w, h.engine.Live().Snapshot())
}

func (h *Handlers) apiHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.jsonOK(w, map[string]any{
		"status":      "ok",
		"source":      h.engine.Driver(),
		"redis":       h.engine.RedisConnected(),
		"messaging":   h.engine.MsgClient().State(),
		"sse_clients": h.eventHub.ClientCount(),
	})
}

// apiListEntity serves the same listing as the entity's page. The sort comes
// from the request, never the session: either sort and dir, or an AIP-132
// order_by of which only the first field is applied.
func (h *Handlers) apiListEntity(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	cols, err := h.engine.Catalog().Columns(entity)
	if err != nil {
		h.jsonError(w, err.Error(), http.StatusNotFound)
		return
	}

	params := r.URL.Query()
	sort, err := apiSort(params, cols)
	if err != nil {
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	listing, err := h.list(entity, parseQuery(params, sort))
	if err != nil {
		if errors.Is(err, fleet.ErrUnknownEntity) {
			h.jsonError(w, err.Error(), http.StatusNotFound)
			return
		}
		h.jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.jsonOK(w, listing)
}

func apiSort(params url.Values, cols []fleet.ColumnInfo) (fleet.SortState, error) {
	orderBy := params.Get("order_by")
	if orderBy == "" {
		dir := fleet.Ascending
		if d := params.Get("dir"); d == "desc" || d == string(fleet.Descending) {
			dir = fleet.Descending
		}
		if key := params.Get("sort"); key != "" {
			return fleet.SortState{Key: key, Direction: dir}, nil
		}
		return fleet.SortState{}, nil
	}

	var ob ordering.OrderBy
	if err := ob.UnmarshalString(orderBy); err != nil {
		return fleet.SortState{}, err
	}
	var sortable []string
	for _, c := range cols {
		if c.Sortable {
			sortable = append(sortable, c.Key)
		}
	}
	if err := ob.ValidateForPaths(sortable...); err != nil {
		return fleet.SortState{}, err
	}
	if len(ob.Fields) == 0 {
		return fleet.SortState{}, nil
	}
	first := ob.Fields[0]
	dir := fleet.Ascending
	if first.Desc {
		dir = fleet.Descending
	}
	return fleet.SortState{Key: first.Path, Direction: dir}, nil
}

func (h *Handlers) apiNotFound(w http.ResponseWriter, r *http.Request) {
	h.jsonError(w, "not found", http.StatusNotFound)
}
