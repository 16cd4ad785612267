package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kowalski-site/kowalski/internal/walker"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Router.Mode != RouterPath {
		t.Errorf("expected default router mode %q, got %q", RouterPath, cfg.Router.Mode)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if len(cfg.Pages) != 4 || cfg.Pages[0].ID != "home" || cfg.Pages[0].Path != "/" {
		t.Errorf("unexpected default pages: %+v", cfg.Pages)
	}
	if cfg.PressDelay() != 100*time.Millisecond {
		t.Errorf("expected press delay 100ms, got %v", cfg.PressDelay())
	}
	if cfg.Transition() != 500*time.Millisecond {
		t.Errorf("expected transition 500ms, got %v", cfg.Transition())
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.kowalski.yml")

	original := DefaultConfig()
	original.Site.Title = "Kowalski Studio"
	original.Router.Mode = RouterMemory
	original.Server.Port = 9090
	original.Pages = []PageConfig{{ID: "home", Path: "/"}, {ID: "gallery", Path: "/art"}}
	original.Menu.PressDelay = "250ms"

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Site.Title != original.Site.Title {
		t.Errorf("title: got %q, want %q", loaded.Site.Title, original.Site.Title)
	}
	if loaded.Router.Mode != RouterMemory {
		t.Errorf("router mode: got %q", loaded.Router.Mode)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("port: got %d", loaded.Server.Port)
	}
	if len(loaded.Pages) != 2 {
		t.Fatalf("pages length: got %d, want 2 (%+v)", len(loaded.Pages), loaded.Pages)
	}
	if loaded.Pages[1].ID != "gallery" || loaded.Pages[1].Path != "/art" {
		t.Errorf("pages[1]: got %+v", loaded.Pages[1])
	}
	if loaded.PressDelay() != 250*time.Millisecond {
		t.Errorf("press delay: got %v", loaded.PressDelay())
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Router.Mode != RouterPath {
		t.Errorf("expected default router mode, got %q", cfg.Router.Mode)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("KOWALSKI_ROUTER__MODE", "memory")
	t.Setenv("KOWALSKI_SERVER__PORT", "7070")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Router.Mode != RouterMemory {
		t.Errorf("env override failed: got %q, want %q", loaded.Router.Mode, RouterMemory)
	}
	if loaded.Server.Port != 7070 {
		t.Errorf("env override failed: got port %d", loaded.Server.Port)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("site: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"router mode", func(c *Config) { c.Router.Mode = "hash" }},
		{"port", func(c *Config) { c.Server.Port = 70000 }},
		{"unknown page", func(c *Config) { c.Pages = append(c.Pages, PageConfig{ID: "blog"}) }},
		{"duplicate page", func(c *Config) { c.Pages = append(c.Pages, PageConfig{ID: "shop", Path: "/store"}) }},
		{"relative path", func(c *Config) { c.Pages[1].Path = "shop" }},
		{"duplicate path", func(c *Config) { c.Pages[2].Path = "/shop" }},
		{"press delay", func(c *Config) { c.Menu.PressDelay = "soon" }},
		{"negative transition", func(c *Config) { c.Menu.Transition = "-1s" }},
		{"output dir", func(c *Config) { c.Export.OutputDir = "" }},
		{"asset pattern", func(c *Config) { c.Export.Assets = []string{"[images"} }},
		{"trailing slash duplicate", func(c *Config) { c.Pages[2].Path = "/shop/" }},
		{"reserved static", func(c *Config) { c.Pages[1].Path = "/static" }},
		{"reserved below images", func(c *Config) { c.Pages[1].Path = "/images/shop" }},
		{"reserved ws", func(c *Config) { c.Pages[1].Path = "/ws" }},
		{"reserved ui", func(c *Config) { c.Pages[1].Path = "/_ui/shop" }},
		{"reserved healthz", func(c *Config) { c.Pages[1].Path = "/healthz" }},
		{"home menu variant", func(c *Config) { c.Pages[1].Path = "/menu" }},
		{"nested menu variant", func(c *Config) { c.Pages[2].Path = "/shop/menu" }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestDefaultAssetsSkipLiveScript(t *testing.T) {
	for _, rel := range []string{"site.css", "images/placeholder.png"} {
		if !walker.MatchesInclude(rel, DefaultAssets) {
			t.Errorf("default assets should include %s", rel)
		}
	}
	if walker.MatchesInclude("live.js", DefaultAssets) {
		t.Error("default assets should not include live.js")
	}
}

func TestValidateAcceptsNearReservedPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pages[1].Path = "/staticky"
	cfg.Pages[2].Path = "/menus"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateEmptyPagesAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pages = nil
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty page list should be valid: %v", err)
	}
}

func TestRoutes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pages = []PageConfig{{ID: "shop"}, {ID: "home", Path: "/"}}
	routes := cfg.Routes()
	if len(routes) != 2 || routes[0].ID != "shop" || routes[0].Path != "" || routes[1].Path != "/" {
		t.Errorf("Routes() = %+v", routes)
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"home", []string{"home"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}

func TestWizardValidators(t *testing.T) {
	if validatePort("8080") != nil || validatePort("0") == nil || validatePort("x") == nil {
		t.Error("validatePort mismatch")
	}
	if validatePageList("home, shop") != nil || validatePageList("home,blog") == nil {
		t.Error("validatePageList mismatch")
	}
}
