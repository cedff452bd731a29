package www

import (
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"fleetdash/fleet"
)

const sessionName = "fleetdash-ui"

// newSessionStore signs UI state cookies with secret, or with a random key
// when secret is empty. A random key means sessions do not survive a restart.
func newSessionStore(secret string) *sessions.CookieStore {
	key := []byte(secret)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
	}
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// uiState is the per-session view state: sidebar, theme and column sorts.
type uiState struct {
	session *sessions.Session
}

func (h *Handlers) uiState(r *http.Request) *uiState {
	// A cookie signed with another key yields a fresh session and an error.
	session, _ := h.sessions.Get(r, sessionName)
	return &uiState{session: session}
}

func (s *uiState) save(w http.ResponseWriter, r *http.Request) error {
	return s.session.Save(r, w)
}

// SidebarOpen defaults to true.
func (s *uiState) SidebarOpen() bool {
	v, ok := s.session.Values["sidebar"].(bool)
	return !ok || v
}

func (s *uiState) ToggleSidebar() {
	s.session.Values["sidebar"] = !s.SidebarOpen()
}

func (s *uiState) Dark() bool {
	v, _ := s.session.Values["dark"].(bool)
	return v
}

func (s *uiState) ToggleDark() {
	s.session.Values["dark"] = !s.Dark()
}

func (s *uiState) Sort(entity string) fleet.SortState {
	v, _ := s.session.Values["sort:"+entity].(string)
	return fleet.ParseSortState(v)
}

// ToggleSort records a header click on column key and returns the new state.
func (s *uiState) ToggleSort(entity, key string) fleet.SortState {
	next := s.Sort(entity).Toggle(key)
	s.session.Values["sort:"+entity] = next.String()
	return next
}
