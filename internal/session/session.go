// Package session keeps the per-browser UI state for the web renderer.
package session

import (
	"sync"
	"time"

	"github.com/kowalski-site/kowalski/internal/router"
	"github.com/kowalski-site/kowalski/internal/ui"
)

// State is the UI state owned by one session. It is only touched inside
// Session.With, or from scheduled callbacks, both under the session lock.
type State struct {
	Overlay  *ui.Overlay
	Router   router.Router
	// Location is request-scoped: each caller sets it to its own tab's
	// location before dispatching or rendering.
	Location string
}

// Session serializes every event for one browser: requests, websocket
// messages and timer callbacks all run under its lock.
type Session struct {
	ID string

	mu       sync.Mutex
	state    State
	clock    ui.Scheduler
	lastSeen time.Time

	subMu sync.Mutex
	subs  map[chan struct{}]struct{}
}

// With runs fn with exclusive access to the session state.
func (s *Session) With(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	fn(&s.state)
}

// Dispatch applies a UI action and reports whether it was recognized.
func (s *Session) Dispatch(a ui.Action) bool {
	var ok bool
	s.With(func(st *State) { ok = st.Overlay.Dispatch(a) })
	return ok
}

// AfterFunc implements ui.Scheduler. The callback runs under the session
// lock and subscribers are notified afterwards.
func (s *Session) AfterFunc(d time.Duration, f func()) ui.Timer {
	return s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		f()
		s.mu.Unlock()
		s.notify()
	})
}

// Subscribe returns a channel that receives a signal whenever state changes
// outside a request, such as a pressed button clearing. The cancel func
// must be called once the subscriber is done.
func (s *Session) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	s.subMu.Lock()
	s.subs[ch] = struct{}{}
	s.subMu.Unlock()
	return ch, func() {
		s.subMu.Lock()
		delete(s.subs, ch)
		s.subMu.Unlock()
	}
}

func (s *Session) notify() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
