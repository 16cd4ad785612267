package ui

import (
	"fmt"
	"time"
)

// DefaultTransition is the slide and backdrop animation duration.
const DefaultTransition = 500 * time.Millisecond

const panelWidth = 150

// OverlayOptions tunes an Overlay. Zero values take the defaults.
type OverlayOptions struct {
	Scheduler  Scheduler
	PressDelay time.Duration
	Transition time.Duration
}

// Overlay is the slide-in page menu. It is closed until toggled, and closes
// itself after any entry is selected.
type Overlay struct {
	open       bool
	ids        []string
	buttons    map[string]*MenuButton
	transition time.Duration
}

// NewOverlay builds a menu listing ids in order. onSelect receives the id of
// the activated entry.
func NewOverlay(ids []string, onSelect func(id string), opts OverlayOptions) *Overlay {
	if opts.Transition <= 0 {
		opts.Transition = DefaultTransition
	}
	o := &Overlay{
		ids:        append([]string(nil), ids...),
		buttons:    make(map[string]*MenuButton, len(ids)),
		transition: opts.Transition,
	}
	for _, id := range o.ids {
		id := id
		o.buttons[id] = NewMenuButton(id, func() {
			if onSelect != nil {
				onSelect(id)
			}
		}, opts.Scheduler, opts.PressDelay)
	}
	return o
}

// Open reports whether the panel is showing.
func (o *Overlay) Open() bool { return o.open }

// Toggle flips the overlay state.
func (o *Overlay) Toggle() { o.open = !o.open }

// Close forces the overlay closed.
func (o *Overlay) Close() { o.open = false }

// IDs returns the listed page ids in display order.
func (o *Overlay) IDs() []string {
	return append([]string(nil), o.ids...)
}

// Button returns the button for id.
func (o *Overlay) Button(id string) (*MenuButton, bool) {
	b, ok := o.buttons[id]
	return b, ok
}

// Activate presses the entry for id and closes the overlay. It reports
// false, leaving all state alone, when id is not listed.
func (o *Overlay) Activate(id string) bool {
	b, ok := o.buttons[id]
	if !ok {
		return false
	}
	b.Press()
	o.Close()
	return true
}

// Dispatch applies a toggle or select action. Unknown actions report false.
func (o *Overlay) Dispatch(a Action) bool {
	if a == ActionToggleMenu {
		o.Toggle()
		return true
	}
	if id, ok := a.SelectTarget(); ok {
		return o.Activate(id)
	}
	return false
}

// View renders the backdrop, panel and toggle icon.
func (o *Overlay) View() Node {
	ms := o.transition.Milliseconds()

	backdrop := 0.0
	left := fmt.Sprintf("-%dpx", panelWidth)
	panelPointer := "none"
	invert := 0
	if o.open {
		backdrop = 0.6
		left = "0px"
		panelPointer = "auto"
		invert = 100
	}

	rows := make([]Node, 0, len(o.ids)+2)
	rows = append(rows, Container(ContainerProps{Style: Style{"height": "20px"}}))
	for _, id := range o.ids {
		rows = append(rows, o.buttons[id].View(SelectAction(id)))
	}
	rows = append(rows, Container(ContainerProps{
		Class:   "menu-toggle",
		OnClick: ActionToggleMenu,
		Style: Style{
			"position":       "absolute",
			"right":          "-60px",
			"top":            "0",
			"filter":         fmt.Sprintf("invert(%d%%)", invert),
			"pointer-events": "auto",
			"cursor":         "pointer",
			"width":          "60px",
			"height":         "60px",
		},
	}, menuIcon()))

	panel := Container(ContainerProps{
		Class: "menu-panel",
		Style: Style{
			"left":            left,
			"width":           fmt.Sprintf("%dpx", panelWidth),
			"flex-flow":       "column",
			"justify-content": "flex-start",
			"background":      "white",
			"transition":      fmt.Sprintf("left %dms ease-out", ms),
			"pointer-events":  panelPointer,
		},
	}, rows...)

	return Container(ContainerProps{
		ID:    "mobile-menu",
		Class: overlayClass(o.open),
		Style: Style{
			"position":        "fixed",
			"top":             "0",
			"left":            "0",
			"pointer-events":  "none",
			"background":      fmt.Sprintf("rgba(0,0,0,%g)", backdrop),
			"transition":      fmt.Sprintf("background %dms ease-out", ms),
			"justify-content": "flex-start",
		},
	}, panel)
}

func overlayClass(open bool) string {
	if open {
		return "mobile-menu open"
	}
	return "mobile-menu"
}

// menuIcon is the three-bar menu glyph.
func menuIcon() Node {
	return Raw(`<svg width="30" height="30" viewBox="0 0 24 24" aria-label="Menu"><path d="M3 18h18v-2H3v2zm0-5h18v-2H3v2zm0-7v2h18V6H3z"/></svg>`)
}
