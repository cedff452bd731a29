package www

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"fleetdash/export"
	"fleetdash/fleet"
)

// handleExport downloads the rows the entity's page would show, with the
// session's column sort applied.
func (h *Handlers) handleExport(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	q := parseQuery(r.URL.Query(), h.uiState(r).Sort(entity))

	listing, err := h.list(entity, q)
	if err != nil {
		if errors.Is(err, fleet.ErrUnknownEntity) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, listing); err != nil {
		h.log.Errorf("www: export %s: %v", entity, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.engine.RecordExport(entity, listing.Count, "web", "download")

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(entity, time.Now())))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	buf.WriteTo(w)
}
