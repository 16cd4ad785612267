// Package router decides which registered page is active.
//
// Two strategies exist and a deployment picks exactly one: Memory keeps an
// explicit selection per instance, Path derives the page from the current
// location.
package router

import (
	"fmt"

	"github.com/kowalski-site/kowalski/internal/registry"
)

// Mode names a routing strategy.
type Mode string

const (
	ModeMemory Mode = "memory"
	ModePath   Mode = "path"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMemory, ModePath:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid router mode %q: must be one of memory, path", s)
	}
}

// Match is the outcome of resolving the active page. Found is false when no
// page should render.
type Match struct {
	Entry registry.Entry
	Found bool
}

// Router resolves the active page and handles selection.
type Router interface {
	// Resolve returns the active page for location. Memory routers ignore
	// location.
	Resolve(location string) Match
	// Navigate selects id and returns the location to move to, or "" when
	// the router does not navigate.
	Navigate(id string) string
}
