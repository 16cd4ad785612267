package config

import (
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/kowalski-site/kowalski/internal/export"
	"github.com/kowalski-site/kowalski/internal/pages"
	"github.com/kowalski-site/kowalski/internal/walker"
	"github.com/kowalski-site/kowalski/internal/web"
)

// EnvPrefix marks environment overrides. A double underscore separates
// nesting levels: KOWALSKI_SERVER__PORT -> server.port.
const EnvPrefix = "KOWALSKI_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (KOWALSKI_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// Lists from the file replace the defaults rather than merging by index.
	if k.Exists("pages") {
		cfg.Pages = nil
	}
	if k.Exists("export.assets") {
		cfg.Export.Assets = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validModes is the set of recognized router modes.
var validModes = map[string]bool{
	RouterMemory: true,
	RouterPath:   true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validModes[c.Router.Mode] {
		return fmt.Errorf("invalid router.mode %q: must be one of memory, path", c.Router.Mode)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	seenIDs := make(map[string]bool, len(c.Pages))
	seenPaths := make(map[string]string, len(c.Pages))
	for i, p := range c.Pages {
		if _, ok := pages.DefaultPaths[p.ID]; !ok {
			return fmt.Errorf("pages[%d]: unknown page %q", i, p.ID)
		}
		if seenIDs[p.ID] {
			return fmt.Errorf("pages[%d]: page %q listed twice", i, p.ID)
		}
		seenIDs[p.ID] = true

		raw := p.Path
		if raw == "" {
			raw = pages.DefaultPaths[p.ID]
		}
		if !strings.HasPrefix(raw, "/") {
			return fmt.Errorf("pages[%d]: path %q must start with /", i, raw)
		}
		clean := path.Clean(raw)
		if reserved, ok := reservedPrefix(clean); ok {
			return fmt.Errorf("pages[%d]: path %q is reserved by %s", i, raw, reserved)
		}
		if other, ok := seenPaths[clean]; ok {
			return fmt.Errorf("pages[%d]: path %q already used by %q", i, raw, other)
		}
		seenPaths[clean] = p.ID
	}

	// Static export writes each page's open menu under <path>/menu, which
	// must not be another page's own directory.
	for p, id := range seenPaths {
		variant := path.Join(p, export.MenuDir)
		if other, ok := seenPaths[variant]; ok {
			return fmt.Errorf("page %q at %s collides with the menu view of %q", other, variant, id)
		}
	}

	if _, err := parseDuration("menu.press_delay", c.Menu.PressDelay); err != nil {
		return err
	}
	if _, err := parseDuration("menu.transition", c.Menu.Transition); err != nil {
		return err
	}

	if c.Export.OutputDir == "" {
		return fmt.Errorf("export.output_dir is required")
	}
	if bad, ok := walker.ValidPatterns(c.Export.Assets); !ok {
		return fmt.Errorf("export.assets: invalid pattern %q", bad)
	}

	return nil
}

// PressDelay returns the parsed menu press delay, or 0 for the default.
func (c *Config) PressDelay() time.Duration {
	d, _ := parseDuration("menu.press_delay", c.Menu.PressDelay)
	return d
}

// Transition returns the parsed menu transition, or 0 for the default.
func (c *Config) Transition() time.Duration {
	d, _ := parseDuration("menu.transition", c.Menu.Transition)
	return d
}

// Routes converts the configured pages into catalog routes.
func (c *Config) Routes() []pages.Route {
	routes := make([]pages.Route, len(c.Pages))
	for i, p := range c.Pages {
		routes[i] = pages.Route{ID: p.ID, Path: p.Path}
	}
	return routes
}

// reservedPrefix reports the reserved site path p falls under, if any.
func reservedPrefix(p string) (string, bool) {
	for _, r := range web.ReservedPaths {
		if p == r || strings.HasPrefix(p, r+"/") {
			return r, true
		}
	}
	return "", false
}

func parseDuration(key, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must be non-negative", key)
	}
	return d, nil
}
