// Package export writes the site as static HTML. Every page is written
// twice: once with the menu closed and once, under menu/, with it open.
// Menu links point between these files, so the site works without a server.
package export

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/kowalski-site/kowalski/internal/progress"
	"github.com/kowalski-site/kowalski/internal/registry"
	"github.com/kowalski-site/kowalski/internal/router"
	"github.com/kowalski-site/kowalski/internal/session"
	"github.com/kowalski-site/kowalski/internal/ui"
	"github.com/kowalski-site/kowalski/internal/walker"
	"github.com/kowalski-site/kowalski/internal/web"
)

// MenuDir is the subdirectory holding each page's open-menu variant.
const MenuDir = "menu"

// Options configures an export.
type Options struct {
	Title        string
	HeaderHeight string
	Transition   time.Duration
	OutputDir    string
	// AssetsDir replaces the built-in assets when set.
	AssetsDir string
	// Assets are glob patterns selecting which asset files are copied.
	Assets   []string
	Reporter progress.Reporter
}

// Result summarizes an export.
type Result struct {
	Pages         int
	AssetsCopied  int
	AssetsSkipped int
}

// Exporter renders a registry to disk.
type Exporter struct {
	opts     Options
	reg      *registry.Registry
	notFound registry.Page
	header   ui.Header
}

// New creates an Exporter. notFound, when non-nil, is written as 404.html.
func New(opts Options, reg *registry.Registry, notFound registry.Page) *Exporter {
	if opts.Reporter == nil {
		opts.Reporter = progress.Nop{}
	}
	return &Exporter{
		opts:     opts,
		reg:      reg,
		notFound: notFound,
		header:   ui.Header{Text: opts.Title, Height: opts.HeaderHeight},
	}
}

type job struct {
	rel  string
	desc string
	run  func() error
}

// Run writes every page and asset under the output directory.
func (e *Exporter) Run() (Result, error) {
	var res Result
	if e.opts.OutputDir == "" {
		return res, errors.New("export: output directory is required")
	}

	src, err := e.assetFS()
	if err != nil {
		return res, err
	}
	assets, err := walker.Walk(src, walker.Config{Include: e.opts.Assets})
	if err != nil {
		return res, fmt.Errorf("export: collecting assets: %w", err)
	}

	var jobs []job
	owners := make(map[string]string)
	for _, entry := range e.reg.Entries() {
		entry := entry
		for _, open := range []bool{false, true} {
			open := open
			rel := pageFile(entry.Path, open)
			if other, ok := owners[rel]; ok {
				return res, fmt.Errorf("export: %s is written by both %q and %q", rel, other, entry.ID)
			}
			owners[rel] = entry.ID
			jobs = append(jobs, job{rel: rel, desc: rel, run: func() error {
				res.Pages++
				return e.writePage(entry, open, rel)
			}})
		}
	}
	if e.notFound != nil {
		jobs = append(jobs, job{rel: "404.html", desc: "404.html", run: func() error {
			res.Pages++
			return e.writeNotFound()
		}})
	}
	for _, a := range assets {
		a := a
		for _, rel := range assetTargets(a.RelPath) {
			rel := rel
			jobs = append(jobs, job{rel: rel, desc: rel, run: func() error {
				copied, err := e.copyAsset(src, a, rel)
				if copied {
					res.AssetsCopied++
				} else if err == nil {
					res.AssetsSkipped++
				}
				return err
			}})
		}
	}

	e.opts.Reporter.Start(len(jobs))
	defer e.opts.Reporter.Finish()
	for i, j := range jobs {
		if err := j.run(); err != nil {
			return res, fmt.Errorf("export: %s: %w", j.rel, err)
		}
		e.opts.Reporter.Update(i+1, j.desc)
	}
	return res, nil
}

func (e *Exporter) assetFS() (fs.FS, error) {
	if e.opts.AssetsDir == "" {
		return web.StaticFS(), nil
	}
	info, err := os.Stat(e.opts.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("export: assets dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("export: assets dir %s is not a directory", e.opts.AssetsDir)
	}
	return os.DirFS(e.opts.AssetsDir), nil
}

// writePage renders entry with the menu open or closed.
func (e *Exporter) writePage(entry registry.Entry, open bool, rel string) error {
	st := &session.State{
		Overlay:  ui.NewOverlay(e.reg.IDs(), nil, ui.OverlayOptions{Transition: e.opts.Transition}),
		Router:   router.NewPath(e.reg),
		Location: entry.Path,
	}
	if open {
		st.Overlay.Toggle()
	}
	out, _, err := web.Document(st, e.opts.Title, e.header, ui.Node{}, router.ModePath, ui.Desktop, e.links(entry.Path, open))
	if err != nil {
		return err
	}
	return e.write(rel, out)
}

func (e *Exporter) writeNotFound() error {
	empty := registry.New()
	st := &session.State{
		Overlay:  ui.NewOverlay(e.reg.IDs(), nil, ui.OverlayOptions{Transition: e.opts.Transition}),
		Router:   router.NewPath(empty),
		Location: "/404.html",
	}
	out, _, err := web.Document(st, e.opts.Title, e.header, e.notFound.Render(ui.Desktop), router.ModePath, ui.Desktop, e.links("/", false))
	if err != nil {
		return err
	}
	return e.write("404.html", out)
}

// links maps menu actions to static URLs for the page at location.
func (e *Exporter) links(location string, open bool) func(ui.Action) string {
	return func(a ui.Action) string {
		if a == ui.ActionToggleMenu {
			if open {
				return dirURL(location)
			}
			return dirURL(path.Join(location, MenuDir))
		}
		if id, ok := a.SelectTarget(); ok {
			if entry, found := e.reg.Lookup(id); found {
				return dirURL(entry.Path)
			}
		}
		return ""
	}
}

func (e *Exporter) write(rel string, data []byte) error {
	dst := filepath.Join(e.opts.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

// copyAsset copies a to rel under the output directory. It reports false
// without error when an identical file is already there.
func (e *Exporter) copyAsset(src fs.FS, a walker.Asset, rel string) (bool, error) {
	if hash, err := walker.HashFile(os.DirFS(e.opts.OutputDir), rel); err == nil && hash == a.ContentHash {
		return false, nil
	}

	in, err := src.Open(a.RelPath)
	if err != nil {
		return false, err
	}
	defer in.Close()

	dst := filepath.Join(e.opts.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, err
	}
	out, err := os.Create(dst)
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return false, err
	}
	return true, out.Close()
}

// pageFile is the output file for a page path.
func pageFile(p string, open bool) string {
	dir := strings.Trim(path.Clean("/"+p), "/")
	if open {
		dir = path.Join(dir, MenuDir)
	}
	return path.Join(dir, "index.html")
}

// assetTargets lists where an asset is written. Everything is served under
// /static; images are also served from /images, where pages reference them.
func assetTargets(rel string) []string {
	targets := []string{path.Join("static", rel)}
	if strings.HasPrefix(rel, "images/") {
		targets = append(targets, rel)
	}
	return targets
}

// dirURL turns a page path into a link to its directory index.
func dirURL(p string) string {
	p = path.Clean("/" + p)
	if p == "/" {
		return p
	}
	return p + "/"
}
