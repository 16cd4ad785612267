package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kowalski-site/kowalski/internal/registry"
	"github.com/kowalski-site/kowalski/internal/router"
	"github.com/kowalski-site/kowalski/internal/ui"
)

// Options configures the state every new session starts with.
type Options struct {
	Registry   *registry.Registry
	NewRouter  func() router.Router
	Clock      ui.Scheduler
	PressDelay time.Duration
	Transition time.Duration
}

// Store holds live sessions keyed by id.
type Store struct {
	opts Options

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty store.
func NewStore(opts Options) *Store {
	if opts.Clock == nil {
		opts.Clock = ui.WallClock
	}
	return &Store{
		opts:     opts,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Create starts a new session with a closed menu and a fresh router.
func (st *Store) Create() *Session {
	s := &Session{
		ID:       uuid.NewString(),
		clock:    st.opts.Clock,
		lastSeen: time.Now(),
		subs:     make(map[chan struct{}]struct{}),
	}
	state := &s.state
	state.Router = st.opts.NewRouter()
	state.Overlay = ui.NewOverlay(st.opts.Registry.IDs(), func(id string) {
		if loc := state.Router.Navigate(id); loc != "" {
			state.Location = loc
		}
	}, ui.OverlayOptions{
		Scheduler:  s,
		PressDelay: st.opts.PressDelay,
		Transition: st.opts.Transition,
	})

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// GetOrCreate returns the session for id, or a new one when id is unknown.
// created reports whether a new session was made.
func (st *Store) GetOrCreate(id string) (s *Session, created bool) {
	if id != "" {
		if s, ok := st.Get(id); ok {
			return s, false
		}
	}
	return st.Create(), true
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops sessions idle for longer than ttl and returns how many it
// removed.
func (st *Store) Sweep(ttl time.Duration) int {
	now := time.Now()
	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, s := range st.sessions {
		if s.idleSince(now) > ttl {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is done.
func (st *Store) Run(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Sweep(ttl); n > 0 {
				log.Printf("session: expired %d idle sessions", n)
			}
		}
	}
}
