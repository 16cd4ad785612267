package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/kowalski-site/kowalski/internal/pages"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to kowalski! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Site.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.Site.Title = title

	// 2. Router mode.
	modePrompt := promptui.Select{
		Label: "Select page routing",
		Items: []string{
			"path   — every page has its own URL",
			"memory — one URL, the menu swaps pages in place",
		},
	}
	modeIdx, _, err := modePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("router selection: %w", err)
	}
	cfg.Router.Mode = []string{RouterPath, RouterMemory}[modeIdx]

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:    "Server port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 4. Pages, in menu order.
	pagesPrompt := promptui.Prompt{
		Label:    "Pages in menu order (comma-separated)",
		Default:  strings.Join(pages.DefaultOrder, ","),
		Validate: validatePageList,
	}
	pagesStr, err := pagesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("pages: %w", err)
	}
	cfg.Pages = nil
	for _, id := range splitAndTrim(pagesStr) {
		cfg.Pages = append(cfg.Pages, PageConfig{ID: id, Path: pages.DefaultPaths[id]})
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}

func validatePageList(s string) error {
	for _, id := range splitAndTrim(s) {
		if _, ok := pages.DefaultPaths[id]; !ok {
			return fmt.Errorf("unknown page %q", id)
		}
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
