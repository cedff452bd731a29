package www

import (
	"net/http"
	"net/url"
)

func (h *Handlers) handleToggleSidebar(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, (*uiState).ToggleSidebar)
}

func (h *Handlers) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, (*uiState).ToggleDark)
}

// toggle flips one session flag and sends the browser back where it came
// from: the form's "next" field, else the referring page.
func (h *Handlers) toggle(w http.ResponseWriter, r *http.Request, flip func(*uiState)) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ui := h.uiState(r)
	flip(ui)
	if err := ui.save(w, r); err != nil {
		h.log.Warnf("www: save session: %v", err)
	}
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

func backTo(r *http.Request) string {
	if next := r.FormValue("next"); next != "" {
		return safeRedirect(next, "/dashboard")
	}
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Path != "" {
		return safeRedirect(ref.RequestURI(), "/dashboard")
	}
	return "/dashboard"
}
