package www

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fleetdash/engine"
	"fleetdash/metrics"
)

// NewRouter builds the HTTP handler for eng. The returned func stops the
// event hub and must be called before the server shuts down.
func NewRouter(eng *engine.Engine) (http.Handler, func(), error) {
	h, err := NewHandlers(eng)
	if err != nil {
		return nil, nil, err
	}
	h.eventHub.Start()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	pages := make(map[string]http.HandlerFunc)
	for _, route := range Routes() {
		var fn http.HandlerFunc
		switch {
		case route.Page == "landing":
			fn = h.handleLanding(route)
		case route.Page == "dashboard":
			fn = h.handleDashboard(route)
		default:
			fn = h.handleListPage(route)
		}
		pages[route.Path] = fn
		r.Get(route.Path, fn)
	}

	r.Get("/search", h.handleSearch)
	r.Get("/diagnostics", h.handleDiagnostics)
	r.Get("/export/{entity}.xlsx", h.handleExport)
	r.Post("/ui/sidebar", h.handleToggleSidebar)
	r.Post("/ui/theme", h.handleToggleTheme)

	r.Get("/events", h.eventHub.ServeHTTP)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/routes", h.apiRoutes)
		r.Get("/menu", h.apiMenu)
		r.Get("/live", h.apiLive)
		r.Get("/health", h.apiHealthCheck)
		r.Get("/{entity}", h.apiListEntity)
		r.NotFound(h.apiNotFound)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api/") {
			h.apiNotFound(w, req)
			return
		}
		if route, ok := Lookup(req.URL.Path); ok && req.Method == http.MethodGet {
			pages[route.Path](w, req)
			return
		}
		http.Redirect(w, req, "/landing", http.StatusFound)
	})

	return r, h.eventHub.Stop, nil
}
