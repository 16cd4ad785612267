package router

import "github.com/kowalski-site/kowalski/internal/registry"

// Memory holds the selected page id. It is not safe for concurrent use;
// callers serialize access per instance.
type Memory struct {
	reg      *registry.Registry
	selected string
}

// NewMemory creates a router and attaches reg.
func NewMemory(reg *registry.Registry) *Memory {
	m := &Memory{}
	m.Attach(reg)
	return m
}

// Attach makes reg the page source. The first key is selected only when
// there is no selection yet, so repeated attaches never override one.
func (m *Memory) Attach(reg *registry.Registry) {
	m.reg = reg
	if m.selected != "" {
		return
	}
	if first, ok := reg.First(); ok {
		m.selected = first.ID
	}
}

// Selected returns the current selection, or "" before one exists.
func (m *Memory) Selected() string { return m.selected }

// Select records an explicit selection. The id is not checked against the
// registry; an unknown id simply renders nothing.
func (m *Memory) Select(id string) { m.selected = id }

// Active returns the selected entry.
func (m *Memory) Active() Match {
	if m.selected == "" {
		return Match{}
	}
	e, ok := m.reg.Lookup(m.selected)
	return Match{Entry: e, Found: ok}
}

// Resolve implements Router.
func (m *Memory) Resolve(string) Match { return m.Active() }

// Navigate implements Router. Memory routers never change location.
func (m *Memory) Navigate(id string) string {
	m.Select(id)
	return ""
}
