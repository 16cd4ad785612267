// Package preview renders the site in the terminal so the menu and page
// switching can be tried without a browser.
package preview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/kowalski-site/kowalski/internal/registry"
	"github.com/kowalski-site/kowalski/internal/router"
	"github.com/kowalski-site/kowalski/internal/ui"
)

// MarkdownFunc renders page markdown for a terminal of the given width.
type MarkdownFunc func(src string, width int) (string, error)

// GlamourMarkdown returns a MarkdownFunc rendering with glamour's dark
// style. The renderer is rebuilt only when the width changes.
func GlamourMarkdown() MarkdownFunc {
	c := &glamourCache{}
	return c.Render
}

// glamourCache holds the renderer for the last width seen.
type glamourCache struct {
	width int
	r     *glamour.TermRenderer
}

func (c *glamourCache) Render(src string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	if c.r == nil || c.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("creating markdown renderer: %w", err)
		}
		c.r, c.width = r, width
	}
	return c.r.Render(src)
}

// Options configures a Model.
type Options struct {
	Title      string
	Registry   *registry.Registry
	Scheduler  ui.Scheduler
	PressDelay time.Duration
	Markdown   MarkdownFunc
}

// markdownSource is implemented by pages backed by markdown content.
type markdownSource interface {
	Markdown() string
}

// Model is the bubbletea model for the terminal preview. It uses the
// in-memory router: pages switch without any location.
type Model struct {
	title    string
	reg      *registry.Registry
	router   *router.Memory
	overlay  *ui.Overlay
	markdown MarkdownFunc
	keys     KeyMap

	cursor int
	width  int
	height int
}

// New builds the preview model.
func New(opts Options) *Model {
	if opts.Markdown == nil {
		opts.Markdown = GlamourMarkdown()
	}
	m := &Model{
		title:    opts.Title,
		reg:      opts.Registry,
		router:   router.NewMemory(opts.Registry),
		markdown: opts.Markdown,
		keys:     DefaultKeyMap(),
	}
	m.overlay = ui.NewOverlay(opts.Registry.IDs(), func(id string) {
		m.router.Navigate(id)
	}, ui.OverlayOptions{
		Scheduler:  opts.Scheduler,
		PressDelay: opts.PressDelay,
	})
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case runMsg:
		if msg.fn != nil {
			msg.fn()
		}
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Menu):
		m.overlay.Dispatch(ui.ActionToggleMenu)
		return nil
	}

	if !m.overlay.Open() {
		return nil
	}
	ids := m.overlay.IDs()
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.overlay.Close()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(ids)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(ids) {
			m.overlay.Dispatch(ui.SelectAction(ids[m.cursor]))
		}
	}
	return nil
}

// Selected returns the id of the page on display.
func (m *Model) Selected() string { return m.router.Selected() }

// MenuOpen reports whether the menu panel is showing.
func (m *Model) MenuOpen() bool { return m.overlay.Open() }

// View implements tea.Model.
func (m *Model) View() string {
	d := ui.ClassifyWidth(m.width)

	var b strings.Builder
	b.WriteString(m.headerView(d))
	b.WriteString("\n")

	if m.overlay.Open() {
		b.WriteString(m.menuView())
	} else {
		b.WriteString(m.pageView())
	}
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return docStyle.Render(b.String())
}

func (m *Model) headerView(d ui.Device) string {
	style := headerStyle
	if d == ui.Mobile {
		style = compactHeaderStyle
	}
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	return style.Render(strings.ToUpper(m.title))
}

func (m *Model) pageView() string {
	match := m.router.Active()
	if !match.Found {
		return mutedStyle.Render("(no page)")
	}
	src, ok := match.Entry.Page.(markdownSource)
	if !ok {
		return strings.ToUpper(match.Entry.ID)
	}
	out, err := m.markdown(src.Markdown(), m.width-2)
	if err != nil {
		return mutedStyle.Render("render error: " + err.Error())
	}
	return out
}

func (m *Model) menuView() string {
	ids := m.overlay.IDs()
	if len(ids) == 0 {
		return panelStyle.Render(mutedStyle.Render("no pages"))
	}
	lines := make([]string, 0, len(ids))
	for i, id := range ids {
		label := strings.ToUpper(id)
		if btn, ok := m.overlay.Button(id); ok && btn.Pressed() {
			label = pressedStyle.Render(label)
		}
		if i == m.cursor {
			lines = append(lines, cursorStyle.Render("> ")+label)
		} else {
			lines = append(lines, "  "+buttonStyle.Render(label))
		}
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) footerView() string {
	hints := m.keys.hints(m.overlay.Open())
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Help().Key)+" "+mutedStyle.Render(h.Help().Desc))
	}
	return strings.Join(parts, mutedStyle.Render(" • "))
}

// Run starts the preview program and blocks until the user quits.
func Run(opts Options) error {
	sched := &programScheduler{}
	opts.Scheduler = sched
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	sched.send = p.Send
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running preview: %w", err)
	}
	return nil
}
