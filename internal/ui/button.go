package ui

import (
	"strings"
	"time"
)

// DefaultPressDelay is how long a MenuButton stays pressed after activation.
const DefaultPressDelay = 100 * time.Millisecond

// MenuButton is a labeled row with a transient pressed state.
//
// A press collapses any pending clear into a single timer: the previous
// timer is stopped and a generation counter discards a clear that already
// fired but has not run yet.
type MenuButton struct {
	Label    string
	OnSelect func()

	delay   time.Duration
	sched   Scheduler
	pressed bool
	gen     uint64
	timer   Timer
}

// NewMenuButton creates a button. A zero delay uses DefaultPressDelay and a
// nil scheduler uses WallClock.
func NewMenuButton(label string, onSelect func(), sched Scheduler, delay time.Duration) *MenuButton {
	if delay <= 0 {
		delay = DefaultPressDelay
	}
	if sched == nil {
		sched = WallClock
	}
	return &MenuButton{
		Label:    label,
		OnSelect: onSelect,
		delay:    delay,
		sched:    sched,
	}
}

// Press invokes the selection callback, then shows the pressed state until
// the delay elapses.
func (b *MenuButton) Press() {
	if b.OnSelect != nil {
		b.OnSelect()
	}
	b.pressed = true

	if b.timer != nil {
		b.timer.Stop()
	}
	b.gen++
	gen := b.gen
	b.timer = b.sched.AfterFunc(b.delay, func() {
		if gen != b.gen {
			return
		}
		b.pressed = false
		b.timer = nil
	})
}

// Pressed reports whether the pressed visual state is showing.
func (b *MenuButton) Pressed() bool {
	return b.pressed
}

// Release cancels any pending clear and drops the pressed state now.
func (b *MenuButton) Release() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.gen++
	b.pressed = false
}

// View renders the button row. The label is uppercased.
func (b *MenuButton) View(action Action) Node {
	style := Style{
		"height":    "60px",
		"font-size": "24px",
		"cursor":    "pointer",
	}
	if b.pressed {
		style["background"] = "rgba(0,0,0,0.1)"
	}
	class := "menu-button"
	if b.pressed {
		class += " pressed"
	}
	return Container(ContainerProps{
		Class:   class,
		Style:   style,
		OnClick: action,
	}, Text(strings.ToUpper(b.Label)))
}
