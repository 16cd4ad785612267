package preview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kowalski-site/kowalski/internal/ui"
)

// runMsg carries a scheduled callback onto the bubbletea event loop.
type runMsg struct {
	fn func()
}

// programScheduler delivers timer callbacks as messages so they run inside
// Update, serialized with key handling.
type programScheduler struct {
	send func(tea.Msg)
}

func (s *programScheduler) AfterFunc(d time.Duration, f func()) ui.Timer {
	return time.AfterFunc(d, func() {
		if s.send != nil {
			s.send(runMsg{fn: f})
		}
	})
}
