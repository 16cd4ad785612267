// Package web serves the site over HTTP. Pages are rendered on the server
// from per-browser session state; a websocket pushes re-renders when the
// state changes.
package web

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kowalski-site/kowalski/internal/pages"
	"github.com/kowalski-site/kowalski/internal/registry"
	"github.com/kowalski-site/kowalski/internal/router"
	"github.com/kowalski-site/kowalski/internal/session"
	"github.com/kowalski-site/kowalski/internal/ui"
)

// SessionCookie names the cookie carrying the session id.
const SessionCookie = "kowalski_session"

// ReservedPaths are served by the site itself (or, for /healthz, the
// server) and shadow any page registered at or below them.
var ReservedPaths = []string{"/static", "/images", "/ws", "/_ui", "/healthz"}

// Config configures a Site.
type Config struct {
	Title        string
	HeaderHeight string
	Mode         router.Mode
	PressDelay   time.Duration
	Transition   time.Duration
	Verbose      bool
	// Clock overrides the scheduler used for pressed-state timers.
	Clock ui.Scheduler
}

// Site renders the registry for browsers.
type Site struct {
	cfg      Config
	reg      *registry.Registry
	notFound registry.Page
	header   ui.Header
	sessions *session.Store
	assets   fs.FS
}

// New creates a Site over reg. notFound renders unmatched locations in path
// mode.
func New(cfg Config, reg *registry.Registry, notFound registry.Page) *Site {
	if cfg.Mode == "" {
		cfg.Mode = router.ModePath
	}

	var newRouter func() router.Router
	switch cfg.Mode {
	case router.ModeMemory:
		newRouter = func() router.Router { return router.NewMemory(reg) }
	default:
		shared := router.NewPath(reg)
		newRouter = func() router.Router { return shared }
	}

	return &Site{
		cfg:      cfg,
		reg:      reg,
		notFound: notFound,
		header:   ui.Header{Text: cfg.Title, Height: cfg.HeaderHeight},
		sessions: session.NewStore(session.Options{
			Registry:   reg,
			NewRouter:  newRouter,
			Clock:      cfg.Clock,
			PressDelay: cfg.PressDelay,
			Transition: cfg.Transition,
		}),
		assets: staticFS(),
	}
}

// NewFromCatalog is New with the catalog's not-found page.
func NewFromCatalog(cfg Config, reg *registry.Registry, catalog *pages.Catalog) *Site {
	return New(cfg, reg, catalog.NotFound())
}

// Sessions exposes the session store, for sweeping.
func (s *Site) Sessions() *session.Store { return s.sessions }

// RegisterRoutes mounts all site routes onto the given router.
func (s *Site) RegisterRoutes(r chi.Router) {
	static := http.FileServer(http.FS(s.assets))
	r.Handle("/static/*", http.StripPrefix("/static", static))
	r.Handle("/images/*", static)

	r.Get("/ws", s.handleWebSocket)
	r.Get("/_ui/toggle", s.handleToggle)
	r.Get("/_ui/select/{id}", s.handleSelect)

	r.Get("/", s.handlePage)
	r.Get("/*", s.handlePage)
}
