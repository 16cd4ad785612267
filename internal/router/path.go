package router

import (
	"path"
	"strings"

	"github.com/kowalski-site/kowalski/internal/registry"
)

// Path resolves the active page from a URL path. The default entry only
// matches its path exactly; other entries also match sub-paths. Entries are
// tried in registry order and the first match wins.
type Path struct {
	reg *registry.Registry
}

// NewPath creates a path router over reg.
func NewPath(reg *registry.Registry) *Path {
	return &Path{reg: reg}
}

// Resolve implements Router.
func (p *Path) Resolve(location string) Match {
	loc := cleanPath(location)
	for i, e := range p.reg.Entries() {
		if matchPath(cleanPath(e.Path), loc, i == 0) {
			return Match{Entry: e, Found: true}
		}
	}
	return Match{}
}

// Navigate implements Router. It returns the registered path for id, or ""
// when id is unknown.
func (p *Path) Navigate(id string) string {
	e, ok := p.reg.Lookup(id)
	if !ok {
		return ""
	}
	return cleanPath(e.Path)
}

func matchPath(pattern, loc string, exact bool) bool {
	if pattern == loc {
		return true
	}
	if exact {
		return false
	}
	if pattern == "/" {
		return true
	}
	return strings.HasPrefix(loc, pattern+"/")
}

// cleanPath normalizes a location to a rooted path without a trailing slash
// and without any query or fragment.
func cleanPath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
