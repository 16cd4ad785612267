package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := buf.String(); got != "kowalski dev\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestLoadConfigAndRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".kowalski.yml")
	yml := `
pages:
  - id: shop
    path: /
  - id: contact
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	old := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = old })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	reg, _, err := buildRegistry(cfg)
	if err != nil {
		t.Fatalf("buildRegistry: %v", err)
	}
	if got := strings.Join(reg.IDs(), ","); got != "shop,contact" {
		t.Errorf("IDs = %s, want shop,contact", got)
	}
	if e, _ := reg.Lookup("contact"); e.Path != "/contact" {
		t.Errorf("contact path = %q, want default /contact", e.Path)
	}
}

func TestLoadConfigRejectsUnknownPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".kowalski.yml")
	if err := os.WriteFile(path, []byte("pages:\n  - id: blog\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	old := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = old })

	if _, err := loadConfig(); err == nil {
		t.Fatal("expected an error for an unknown page id")
	}
}
