package cmd

import (
	"fmt"

	"github.com/kowalski-site/kowalski/internal/config"
	"github.com/kowalski-site/kowalski/internal/pages"
	"github.com/kowalski-site/kowalski/internal/registry"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `kowalski init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// buildRegistry loads the page catalog and registers the configured pages.
func buildRegistry(cfg *config.Config) (*registry.Registry, *pages.Catalog, error) {
	catalog, err := pages.NewCatalog()
	if err != nil {
		return nil, nil, fmt.Errorf("loading pages: %w", err)
	}
	reg, err := catalog.Registry(cfg.Routes())
	if err != nil {
		return nil, nil, fmt.Errorf("registering pages: %w", err)
	}
	return reg, catalog, nil
}
