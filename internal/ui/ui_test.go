package ui_test

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/kowalski-site/kowalski/internal/ui"
	"github.com/kowalski-site/kowalski/internal/ui/uitest"
)

func parse(t *testing.T, n ui.Node, opts ui.RenderOptions) *goquery.Document {
	t.Helper()
	out, err := ui.HTMLString(n, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse rendered html: %v", err)
	}
	return doc
}

func TestStyleMergeOverrideWins(t *testing.T) {
	base := ui.Style{"height": "100%", "display": "flex"}
	merged := base.Merge(ui.Style{"height": "20px", "color": "red"})

	if merged["height"] != "20px" {
		t.Errorf("height = %q, want 20px", merged["height"])
	}
	if merged["display"] != "flex" {
		t.Errorf("display = %q, want flex", merged["display"])
	}
	if merged["color"] != "red" {
		t.Errorf("color = %q, want red", merged["color"])
	}
	if base["height"] != "100%" {
		t.Error("Merge mutated the receiver")
	}
}

func TestStyleString(t *testing.T) {
	got := ui.Style{"width": "1px", "height": "2px"}.String()
	if got != "height: 2px; width: 1px;" {
		t.Errorf("String() = %q", got)
	}
	if (ui.Style{}).String() != "" {
		t.Error("empty style should render empty")
	}
}

func TestContainerMergesAndForwards(t *testing.T) {
	n := ui.Container(ui.ContainerProps{
		ID:             "box",
		Class:          "c",
		Style:          ui.Style{"height": "60px"},
		OnClick:        "a.click",
		OnPointerEnter: "a.enter",
		OnPointerLeave: "a.leave",
	}, ui.Text("hi"))

	if n.Style["height"] != "60px" {
		t.Errorf("caller height lost: %q", n.Style["height"])
	}
	if n.Style["justify-content"] != "center" || n.Style["font-family"] != "Mansalva" {
		t.Errorf("base style missing: %v", n.Style)
	}
	if n.On.Click != "a.click" || n.On.PointerEnter != "a.enter" || n.On.PointerLeave != "a.leave" {
		t.Errorf("handlers not forwarded: %+v", n.On)
	}

	doc := parse(t, n, ui.RenderOptions{})
	sel := doc.Find("div#box")
	if sel.Length() != 1 {
		t.Fatalf("expected one div#box, got %d", sel.Length())
	}
	if v, _ := sel.Attr("data-on-pointerenter"); v != "a.enter" {
		t.Errorf("data-on-pointerenter = %q", v)
	}
	if strings.TrimSpace(sel.Text()) != "hi" {
		t.Errorf("text = %q", sel.Text())
	}
}

func TestRenderLinkFallback(t *testing.T) {
	n := ui.Container(ui.ContainerProps{OnClick: ui.ActionToggleMenu}, ui.Text("x"))
	doc := parse(t, n, ui.RenderOptions{Link: func(a ui.Action) string {
		if a == ui.ActionToggleMenu {
			return "/_ui/toggle"
		}
		return ""
	}})
	href, ok := doc.Find("a").Attr("href")
	if !ok || href != "/_ui/toggle" {
		t.Errorf("href = %q, %v", href, ok)
	}
}

func TestRenderEscapesText(t *testing.T) {
	out, err := ui.HTMLString(ui.Container(ui.ContainerProps{}, ui.Text("<b>")), ui.RenderOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "<b>") {
		t.Errorf("text was not escaped: %s", out)
	}
}

func TestMenuButtonPressClears(t *testing.T) {
	sched := &uitest.ManualScheduler{}
	calls := 0
	b := ui.NewMenuButton("shop", func() { calls++ }, sched, 0)

	b.Press()
	if calls != 1 {
		t.Fatalf("callback calls = %d, want 1", calls)
	}
	if !b.Pressed() {
		t.Fatal("expected pressed after Press")
	}

	sched.Advance(ui.DefaultPressDelay - time.Millisecond)
	if !b.Pressed() {
		t.Fatal("cleared before delay")
	}
	sched.Advance(time.Millisecond)
	if b.Pressed() {
		t.Fatal("still pressed after delay")
	}
}

func TestMenuButtonRapidPressesCollapse(t *testing.T) {
	sched := &uitest.ManualScheduler{}
	calls := 0
	b := ui.NewMenuButton("shop", func() { calls++ }, sched, 100*time.Millisecond)

	for i := 0; i < 5; i++ {
		b.Press()
		sched.Advance(60 * time.Millisecond)
	}
	if calls != 5 {
		t.Errorf("callback calls = %d, want 5", calls)
	}
	if sched.Pending() != 1 {
		t.Errorf("pending timers = %d, want 1", sched.Pending())
	}
	if !b.Pressed() {
		t.Error("expected pressed 60ms after last press")
	}

	sched.Advance(40 * time.Millisecond)
	if b.Pressed() {
		t.Error("expected clear 100ms after last press")
	}
	if sched.Pending() != 0 {
		t.Errorf("pending timers = %d, want 0", sched.Pending())
	}
}

func TestMenuButtonStaleClearIgnored(t *testing.T) {
	// A scheduler whose Stop never succeeds, so every clear fires.
	var queued []func()
	sched := ui.SchedulerFunc(func(_ time.Duration, f func()) ui.Timer {
		queued = append(queued, f)
		return stubTimer{}
	})
	b := ui.NewMenuButton("x", nil, sched, 0)

	b.Press()
	b.Press()
	queued[0]()
	if !b.Pressed() {
		t.Fatal("stale clear from the first press reset the second")
	}
	queued[1]()
	if b.Pressed() {
		t.Fatal("latest clear did not reset pressed")
	}
}

type stubTimer struct{}

func (stubTimer) Stop() bool { return false }

func TestMenuButtonViewUppercases(t *testing.T) {
	b := ui.NewMenuButton("gallery", nil, &uitest.ManualScheduler{}, 0)
	if got := ui.TextContent(b.View(ui.SelectAction("gallery"))); got != "GALLERY" {
		t.Errorf("label = %q", got)
	}
}

func TestOverlayToggleIsItsOwnInverse(t *testing.T) {
	o := ui.NewOverlay([]string{"home"}, nil, ui.OverlayOptions{Scheduler: &uitest.ManualScheduler{}})
	for _, start := range []bool{false, true} {
		if o.Open() != start {
			o.Toggle()
		}
		o.Toggle()
		o.Toggle()
		if o.Open() != start {
			t.Errorf("double toggle from %v ended at %v", start, o.Open())
		}
	}
}

func TestOverlayActivateClosesAndSelects(t *testing.T) {
	var got []string
	o := ui.NewOverlay([]string{"home", "shop"}, func(id string) { got = append(got, id) },
		ui.OverlayOptions{Scheduler: &uitest.ManualScheduler{}})

	for _, open := range []bool{false, true} {
		if o.Open() != open {
			o.Toggle()
		}
		if !o.Activate("shop") {
			t.Fatal("Activate(shop) = false")
		}
		if o.Open() {
			t.Errorf("overlay open after select (started open=%v)", open)
		}
	}
	if len(got) != 2 || got[0] != "shop" {
		t.Errorf("handler ids = %v", got)
	}

	o.Toggle()
	if o.Activate("missing") {
		t.Error("Activate(missing) = true")
	}
	if !o.Open() {
		t.Error("unknown id closed the overlay")
	}
}

func TestOverlayDispatch(t *testing.T) {
	var got string
	o := ui.NewOverlay([]string{"home"}, func(id string) { got = id },
		ui.OverlayOptions{Scheduler: &uitest.ManualScheduler{}})

	if !o.Dispatch(ui.ActionToggleMenu) || !o.Open() {
		t.Fatal("toggle action did not open")
	}
	if !o.Dispatch(ui.SelectAction("home")) || o.Open() || got != "home" {
		t.Fatalf("select action: open=%v got=%q", o.Open(), got)
	}
	if o.Dispatch("bogus") {
		t.Error("bogus action accepted")
	}
}

func TestOverlayViewStates(t *testing.T) {
	o := ui.NewOverlay([]string{"home", "shop", "gallery"}, nil,
		ui.OverlayOptions{Scheduler: &uitest.ManualScheduler{}})

	doc := parse(t, o.View(), ui.RenderOptions{})
	panel := doc.Find(".menu-panel")
	style, _ := panel.Attr("style")
	if !strings.Contains(style, "left: -150px;") || !strings.Contains(style, "pointer-events: none;") {
		t.Errorf("closed panel style = %q", style)
	}
	if doc.Find("#mobile-menu.open").Length() != 0 {
		t.Error("closed overlay carries open class")
	}

	o.Toggle()
	doc = parse(t, o.View(), ui.RenderOptions{})
	style, _ = doc.Find(".menu-panel").Attr("style")
	if !strings.Contains(style, "left: 0px;") || !strings.Contains(style, "pointer-events: auto;") {
		t.Errorf("open panel style = %q", style)
	}
	backdrop, _ := doc.Find("#mobile-menu").Attr("style")
	if !strings.Contains(backdrop, "rgba(0,0,0,0.6)") || !strings.Contains(backdrop, "500ms") {
		t.Errorf("open backdrop style = %q", backdrop)
	}

	var labels []string
	doc.Find(".menu-button").Each(func(_ int, s *goquery.Selection) {
		labels = append(labels, strings.TrimSpace(s.Text()))
	})
	want := []string{"HOME", "SHOP", "GALLERY"}
	if strings.Join(labels, ",") != strings.Join(want, ",") {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestOverlayEmpty(t *testing.T) {
	o := ui.NewOverlay(nil, nil, ui.OverlayOptions{Scheduler: &uitest.ManualScheduler{}})
	doc := parse(t, o.View(), ui.RenderOptions{})
	if n := doc.Find(".menu-button").Length(); n != 0 {
		t.Errorf("menu buttons = %d, want 0", n)
	}
	if doc.Find(".menu-toggle").Length() != 1 {
		t.Error("toggle missing from empty overlay")
	}
}

func TestHeaderDefaults(t *testing.T) {
	n := ui.Header{Text: "KOWALSKI"}.View(ui.Mobile)
	if n.Style["height"] != ui.DefaultHeaderHeight {
		t.Errorf("height = %q", n.Style["height"])
	}
	if n.Style["font-size"] != "28px" {
		t.Errorf("mobile font = %q", n.Style["font-size"])
	}
	n = ui.Header{Text: "KOWALSKI", Height: "120px"}.View(ui.Desktop)
	if n.Style["height"] != "120px" || n.Style["font-size"] != "48px" {
		t.Errorf("desktop header style = %v", n.Style)
	}
}

func TestClassifyRequest(t *testing.T) {
	tests := []struct {
		ua, hint string
		want     ui.Device
	}{
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", "", ui.Mobile},
		{"Mozilla/5.0 (Linux; Android 14; Pixel 8) Mobile", "", ui.Mobile},
		{"Mozilla/5.0 (X11; Linux x86_64)", "", ui.Desktop},
		{"Mozilla/5.0 (X11; Linux x86_64)", "?1", ui.Mobile},
		{"Mozilla/5.0 (iPhone)", "?0", ui.Desktop},
		{"", "", ui.Desktop},
	}
	for _, tt := range tests {
		if got := ui.ClassifyRequest(tt.ua, tt.hint); got != tt.want {
			t.Errorf("ClassifyRequest(%q, %q) = %v, want %v", tt.ua, tt.hint, got, tt.want)
		}
	}
}

func TestClassifyWidth(t *testing.T) {
	if ui.ClassifyWidth(40) != ui.Mobile {
		t.Error("40 cols should be mobile")
	}
	if ui.ClassifyWidth(120) != ui.Desktop {
		t.Error("120 cols should be desktop")
	}
	if ui.ClassifyWidth(0) != ui.Desktop {
		t.Error("unknown width should be desktop")
	}
}
