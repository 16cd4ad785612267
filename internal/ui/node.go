package ui

import (
	"sort"
	"strings"
)

// Action names an interaction a renderer can dispatch back to the core.
// Renderers treat it as an opaque string.
type Action string

const (
	// ActionToggleMenu flips the overlay between open and closed.
	ActionToggleMenu Action = "menu.toggle"

	selectPrefix = "menu.select:"
)

// SelectAction returns the action that activates the menu entry for id.
func SelectAction(id string) Action {
	return Action(selectPrefix + id)
}

// SelectTarget reports the page id carried by a select action.
func (a Action) SelectTarget() (string, bool) {
	s := string(a)
	if !strings.HasPrefix(s, selectPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(s, selectPrefix)
	return id, id != ""
}

// Handlers are the interaction callbacks a surface can carry.
type Handlers struct {
	Click        Action
	PointerEnter Action
	PointerLeave Action
}

// Empty reports whether no handler is set.
func (h Handlers) Empty() bool {
	return h.Click == "" && h.PointerEnter == "" && h.PointerLeave == ""
}

// Style is an inline style map keyed by CSS property name.
type Style map[string]string

// Merge returns a new Style holding s overlaid by over. Keys in over win.
func (s Style) Merge(over Style) Style {
	out := make(Style, len(s)+len(over))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// String renders the style as a CSS declaration list with sorted keys.
func (s Style) String() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(s[k])
		b.WriteByte(';')
	}
	return b.String()
}

// Node is a renderer-neutral UI tree element. A Node with an empty Tag is a
// text node (Text) or a raw HTML fragment (Raw).
type Node struct {
	Tag      string
	ID       string
	Class    string
	Style    Style
	Attrs    map[string]string
	Text     string
	Raw      string
	On       Handlers
	Children []Node
}

// Text returns a text node.
func Text(s string) Node {
	return Node{Text: s}
}

// Raw returns a node carrying pre-rendered, trusted HTML.
func Raw(html string) Node {
	return Node{Raw: html}
}

// Walk visits n and its descendants depth-first. Returning false from fn
// stops descent into that node's children.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// TextContent concatenates every text node under n.
func TextContent(n Node) string {
	var b strings.Builder
	Walk(n, func(c Node) bool {
		b.WriteString(c.Text)
		return true
	})
	return b.String()
}
