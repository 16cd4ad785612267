// Package pages holds the site's page content components.
package pages

import (
	"embed"
	"fmt"
	"sort"

	"github.com/kowalski-site/kowalski/internal/registry"
	"github.com/kowalski-site/kowalski/internal/ui"
)

//go:embed content/*.md
var contentFS embed.FS

// Page ids shipped with the site.
const (
	Home     = "home"
	Shop     = "shop"
	Gallery  = "gallery"
	Contact  = "contact"
	notFound = "notfound"
)

// PlaceholderImage is the one static image the pages reference.
const PlaceholderImage = "/images/placeholder.png"

// Component is a stateless page built from an embedded markdown body.
type Component struct {
	id     string
	source string
	html   string
}

var _ registry.Page = (*Component)(nil)

// ID returns the page id.
func (c *Component) ID() string { return c.id }

// Markdown returns the page body source.
func (c *Component) Markdown() string { return c.source }

// Render implements registry.Page. Text size follows the device class.
func (c *Component) Render(d ui.Device) ui.Node {
	return ui.Container(ui.ContainerProps{
		Class: "page page-" + c.id,
		Style: ui.Style{
			"flex-flow": "column",
			"font-size": d.FontSize("32px", "64px"),
		},
	}, ui.Raw(c.html))
}

func load(id string) (*Component, error) {
	src, err := contentFS.ReadFile("content/" + id + ".md")
	if err != nil {
		return nil, fmt.Errorf("reading %s content: %w", id, err)
	}
	out, err := RenderMarkdown(string(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	return &Component{id: id, source: string(src), html: out}, nil
}

// Catalog maps page ids to their components.
type Catalog struct {
	pages    map[string]*Component
	notFound *Component
}

// DefaultOrder is the menu order used when no pages are configured.
var DefaultOrder = []string{Home, Shop, Gallery, Contact}

// DefaultPaths gives each shipped page its URL path.
var DefaultPaths = map[string]string{
	Home:    "/",
	Shop:    "/shop",
	Gallery: "/gallery",
	Contact: "/contact",
}

// NewCatalog loads every shipped page.
func NewCatalog() (*Catalog, error) {
	c := &Catalog{pages: make(map[string]*Component, len(DefaultOrder))}
	for _, id := range DefaultOrder {
		p, err := load(id)
		if err != nil {
			return nil, err
		}
		c.pages[id] = p
	}
	nf, err := load(notFound)
	if err != nil {
		return nil, err
	}
	c.notFound = nf
	return c, nil
}

// Lookup returns the component for id.
func (c *Catalog) Lookup(id string) (*Component, bool) {
	p, ok := c.pages[id]
	return p, ok
}

// IDs returns the known page ids, sorted.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.pages))
	for id := range c.pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NotFound is rendered when no registered page matches a location.
func (c *Catalog) NotFound() *Component { return c.notFound }

// Route pairs a page id with its URL path.
type Route struct {
	ID   string
	Path string
}

// Registry builds a registry from routes, in order. An empty path takes the
// page's default path.
func (c *Catalog) Registry(routes []Route) (*registry.Registry, error) {
	entries := make([]registry.Entry, 0, len(routes))
	for _, r := range routes {
		p, ok := c.pages[r.ID]
		if !ok {
			return nil, fmt.Errorf("unknown page %q", r.ID)
		}
		path := r.Path
		if path == "" {
			path = DefaultPaths[r.ID]
		}
		entries = append(entries, registry.Entry{ID: r.ID, Path: path, Page: p})
	}
	return registry.New(entries...), nil
}

// DefaultRoutes lists every shipped page at its default path.
func DefaultRoutes() []Route {
	routes := make([]Route, len(DefaultOrder))
	for i, id := range DefaultOrder {
		routes[i] = Route{ID: id, Path: DefaultPaths[id]}
	}
	return routes
}
