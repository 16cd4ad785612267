// Package registry holds the ordered, immutable mapping from page id to its
// renderable content and URL path.
package registry

import "github.com/kowalski-site/kowalski/internal/ui"

// Page renders one page's content for a device class.
type Page interface {
	Render(d ui.Device) ui.Node
}

// PageFunc adapts a function to Page.
type PageFunc func(d ui.Device) ui.Node

func (f PageFunc) Render(d ui.Device) ui.Node { return f(d) }

// Entry is one registered page.
type Entry struct {
	ID   string
	Path string
	Page Page
}

// Registry is an ordered set of entries keyed by id. The first entry is the
// default (home) entry. A Registry is never mutated after New returns.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// New builds a registry in the given order. When an id repeats, the later
// entry replaces the earlier one in the earlier one's position.
func New(entries ...Entry) *Registry {
	r := &Registry{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		if i, ok := r.index[e.ID]; ok {
			r.entries[i] = e
			continue
		}
		r.index[e.ID] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// IDs returns the page ids in display order.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	ids := make([]string, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.ID
	}
	return ids
}

// Entries returns a copy of the entries in display order.
func (r *Registry) Entries() []Entry {
	if r == nil {
		return nil
	}
	return append([]Entry(nil), r.entries...)
}

// Lookup returns the entry for id.
func (r *Registry) Lookup(id string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	i, ok := r.index[id]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// First returns the default entry.
func (r *Registry) First() (Entry, bool) {
	if r.Len() == 0 {
		return Entry{}, false
	}
	return r.entries[0], true
}

// IsDefault reports whether id names the default entry.
func (r *Registry) IsDefault(id string) bool {
	first, ok := r.First()
	return ok && first.ID == id
}
