package web

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/kowalski-site/kowalski/internal/router"
	"github.com/kowalski-site/kowalski/internal/session"
	"github.com/kowalski-site/kowalski/internal/ui"
)

// view is one rendered state of the app.
type view struct {
	HTML     string
	Status   int
	Location string
	PageID   string
}

// AppTree builds the app for a state: header, at most one page, and the
// menu overlay. It returns the HTTP status the view should be served with.
func AppTree(st *session.State, header ui.Header, notFound ui.Node, mode router.Mode, d ui.Device) (ui.Node, string, int) {
	m := st.Router.Resolve(st.Location)

	var page ui.Node
	status := http.StatusOK
	switch {
	case m.Found:
		page = m.Entry.Page.Render(d)
	case mode == router.ModePath:
		page = notFound
		status = http.StatusNotFound
	}

	app := ui.Container(ui.ContainerProps{
		ID:    "app",
		Style: ui.Style{"flex-flow": "column", "min-height": "100vh"},
	}, header.View(d), page, st.Overlay.View())
	return app, m.Entry.ID, status
}

// render draws st for device d.
func (s *Site) render(st *session.State, d ui.Device) (view, error) {
	var nf ui.Node
	if s.notFound != nil {
		nf = s.notFound.Render(d)
	}
	app, id, status := AppTree(st, s.header, nf, s.cfg.Mode, d)

	out, err := ui.HTMLString(app, ui.RenderOptions{Link: fallbackLinks(st.Location)})
	if err != nil {
		return view{}, fmt.Errorf("rendering app: %w", err)
	}
	return view{HTML: out, Status: status, Location: st.Location, PageID: id}, nil
}

// fallbackLinks maps actions to plain GET endpoints so the menu works
// without the live script.
func fallbackLinks(location string) func(ui.Action) string {
	ret := url.QueryEscape(location)
	return func(a ui.Action) string {
		if a == ui.ActionToggleMenu {
			return "/_ui/toggle?return=" + ret
		}
		if id, ok := a.SelectTarget(); ok {
			return "/_ui/select/" + url.PathEscape(id) + "?return=" + ret
		}
		return ""
	}
}

// documentData feeds documentTemplate.
type documentData struct {
	Title string
	Body  template.HTML
	Live  bool
}

var documentTmpl = template.Must(template.New("document").Parse(documentTemplate))

// document wraps rendered app HTML in a full page.
func document(title, body string, live bool) ([]byte, error) {
	var buf bytes.Buffer
	err := documentTmpl.Execute(&buf, documentData{
		Title: title,
		Body:  template.HTML(body),
		Live:  live,
	})
	if err != nil {
		return nil, fmt.Errorf("executing document template: %w", err)
	}
	return buf.Bytes(), nil
}

// Document renders a full HTML page for st. It is used by the static
// exporter, which never runs the live script.
func Document(st *session.State, title string, header ui.Header, notFound ui.Node, mode router.Mode, d ui.Device, links func(ui.Action) string) ([]byte, int, error) {
	app, _, status := AppTree(st, header, notFound, mode, d)
	body, err := ui.HTMLString(app, ui.RenderOptions{Link: links})
	if err != nil {
		return nil, 0, fmt.Errorf("rendering app: %w", err)
	}
	out, err := document(title, body, false)
	return out, status, err
}
