package www

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"fleetdash/engine"
	"fleetdash/fleet"
	"fleetdash/metrics"
)

//go:embed templates
var templateFS embed.FS

// filterParams are the query parameters that select an enumerated filter.
var filterParams = []string{"status", "type", "category", "priority", "urgency"}

type Handlers struct {
	engine   *engine.Engine
	tmpl     map[string]*template.Template
	sessions *sessions.CookieStore
	eventHub *EventHub
	log      *zap.SugaredLogger
}

func NewHandlers(eng *engine.Engine) (*Handlers, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	log := eng.Logger()
	return &Handlers{
		engine:   eng,
		tmpl:     tmpl,
		sessions: newSessionStore(eng.AppConfig().Web.SessionSecret),
		eventHub: NewEventHub(eng.Events, log),
		log:      log,
	}, nil
}

// parseTemplates builds one template set per page: the layout, every
// partial and the page itself.
func parseTemplates() (map[string]*template.Template, error) {
	pages, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	out := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		name := path.Base(p)
		t, err := template.New(name).Funcs(templateFuncs()).ParseFS(templateFS,
			"templates/layout.html", "templates/partials/*.html", p)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

func (h *Handlers) render(w http.ResponseWriter, name string, data map[string]any) {
	t, ok := h.tmpl[name]
	if !ok {
		http.Error(w, "template not found: "+name, http.StatusInternalServerError)
		return
	}
	root := "bare"
	if layout, _ := data["Layout"].(bool); layout {
		root = "layout"
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, root, data); err != nil {
		h.log.Errorf("www: render %s: %v", name, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// pageData is the chrome every page needs. It also counts the view.
func (h *Handlers) pageData(r *http.Request, route Route) map[string]any {
	ui := h.uiState(r)
	h.engine.RecordPageView(route.Page, r.URL.Path)
	return map[string]any{
		"Page":    route.Page,
		"Title":   route.Title,
		"Layout":  route.Layout,
		"Path":    route.Path,
		"Params":  r.URL.Query(),
		"Sidebar": NewSidebar(route.Path, ui.SidebarOpen()),
		"Dark":    ui.Dark(),
		"Scopes":  searchScopes,
		"Search":  r.URL.Query().Get("q"),
	}
}

func (h *Handlers) jsonOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (h *Handlers) jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// parseQuery reads the search box, filters and sort selector from the URL.
// The column sort is supplied by the caller.
func parseQuery(params url.Values, sort fleet.SortState) fleet.Query {
	q := fleet.Query{
		Search: strings.TrimSpace(params.Get("q")),
		Sort:   sort,
		By:     params.Get("by"),
	}
	for _, p := range filterParams {
		if v := params.Get(p); v != "" {
			if q.Filters == nil {
				q.Filters = make(map[string]string)
			}
			q.Filters[p] = v
		}
	}
	return q
}

// list runs q against entity and records how long it took.
func (h *Handlers) list(entity string, q fleet.Query) (*fleet.Listing, error) {
	start := time.Now()
	l, err := h.engine.Catalog().List(entity, q)
	metrics.QueryDuration.WithLabelValues(entity).Observe(time.Since(start).Seconds())
	return l, err
}

// safeRedirect returns target when it is a path on this site, else fallback.
// Browsers treat a backslash as a slash and drop tabs and newlines, so
// "/\\host" and "/\t/host" are rejected along with "//host".
func safeRedirect(target, fallback string) string {
	if target == "" || target[0] != '/' {
		return fallback
	}
	if strings.IndexFunc(target, func(r rune) bool { return r < 0x20 || r == 0x7f }) >= 0 {
		return fallback
	}
	if len(target) > 1 && (target[1] == '/' || target[1] == '\\') {
		return fallback
	}
	u, err := url.Parse(strings.ReplaceAll(target, "\\", "/"))
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return target
}
