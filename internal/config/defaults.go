package config

import "github.com/kowalski-site/kowalski/internal/pages"

// DefaultAssets are the asset globs copied by export when none are configured.
// Exported pages do not load the live script, so no scripts are listed.
var DefaultAssets = []string{
	"images/**",
	"*.css",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	cfg := &Config{
		Site: SiteConfig{
			Title:        "KOWALSKI",
			HeaderHeight: "80px",
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Router: RouterConfig{
			Mode: RouterPath,
		},
		Menu: MenuConfig{
			PressDelay: "100ms",
			Transition: "500ms",
		},
		Export: ExportConfig{
			OutputDir: "dist",
			Assets:    DefaultAssets,
		},
	}
	for _, r := range pages.DefaultRoutes() {
		cfg.Pages = append(cfg.Pages, PageConfig{ID: r.ID, Path: r.Path})
	}
	return cfg
}
