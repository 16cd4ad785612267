package config

// Router modes.
const (
	RouterMemory = "memory"
	RouterPath   = "path"
)

// Config is the top-level kowalski configuration, corresponding to .kowalski.yml.
type Config struct {
	Site   SiteConfig   `yaml:"site" koanf:"site"`
	Server ServerConfig `yaml:"server" koanf:"server"`
	Router RouterConfig `yaml:"router" koanf:"router"`
	Pages  []PageConfig `yaml:"pages" koanf:"pages"`
	Menu   MenuConfig   `yaml:"menu" koanf:"menu"`
	Export ExportConfig `yaml:"export" koanf:"export"`
}

// SiteConfig holds branding settings.
type SiteConfig struct {
	Title        string `yaml:"title" koanf:"title"`
	HeaderHeight string `yaml:"header_height" koanf:"header_height"`
}

// ServerConfig holds web server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// RouterConfig selects how the active page is chosen.
type RouterConfig struct {
	Mode string `yaml:"mode" koanf:"mode"`
}

// PageConfig registers one page. An empty path takes the page's default.
type PageConfig struct {
	ID   string `yaml:"id" koanf:"id"`
	Path string `yaml:"path,omitempty" koanf:"path"`
}

// MenuConfig tunes the mobile menu. Durations use time.ParseDuration syntax.
type MenuConfig struct {
	PressDelay string `yaml:"press_delay" koanf:"press_delay"`
	Transition string `yaml:"transition" koanf:"transition"`
}

// ExportConfig holds static export settings.
type ExportConfig struct {
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	AssetsDir string   `yaml:"assets_dir,omitempty" koanf:"assets_dir"`
	Assets    []string `yaml:"assets" koanf:"assets"`
}
