package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type BillboardConfig struct {
	// Chart is the chart slug as it appears in site URLs.
	Chart string `yaml:"chart"`
	// Week is the default chart date; the site defines the format.
	Week string `yaml:"week"`
}

type Config struct {
	Billboard BillboardConfig `yaml:"billboard"`
	// Strategy selects the page extraction variant: article or embedded.
	Strategy string `yaml:"strategy"`
	// CacheDir is the root for all persisted state. Empty means the
	// xdg cache home. Set once at load; nothing mutates it afterwards.
	CacheDir  string `yaml:"cache_dir"`
	UserAgent string `yaml:"user_agent"`
	LogLevel  string `yaml:"log_level"`
}

// RootDir is the persisted-state root shared by the chart store and the
// web cache.
func (c *Config) RootDir() string {
	if c.CacheDir != "" {
		return c.CacheDir
	}
	return filepath.Join(xdg.CacheHome, "chartsync")
}

// ChartCacheDir holds one serialized chart edition per {slug}-{date} file.
func (c *Config) ChartCacheDir() string {
	return filepath.Join(c.RootDir(), "billboard.com", "charts")
}

// WebCacheDir belongs to the HTTP layer, which mirrors fetched pages into it.
func (c *Config) WebCacheDir() string {
	return filepath.Join(c.RootDir(), "web-cache")
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "chartsync", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := defaults
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run: write the defaults out for the user to edit.
		// Failing to write is non-fatal; the embedded defaults still apply.
		writeDefaults(path)
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
		fillDefaults(&fileCfg, defaults)
		cfg = &fileCfg
	}

	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

// fillDefaults backfills fields the user's file left empty.
func fillDefaults(cfg, defaults *Config) {
	if cfg.Billboard.Chart == "" {
		cfg.Billboard.Chart = defaults.Billboard.Chart
	}
	if cfg.Billboard.Week == "" {
		cfg.Billboard.Week = defaults.Billboard.Week
	}
	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
}

// applyEnv layers process-environment overrides on top of the file. A
// .env in the working directory is honored when present.
func applyEnv(cfg *Config) {
	godotenv.Load()
	if v := os.Getenv("CHARTSYNC_CHART"); v != "" {
		cfg.Billboard.Chart = v
	}
	if v := os.Getenv("CHARTSYNC_WEEK"); v != "" {
		cfg.Billboard.Week = v
	}
}

func validate(cfg *Config) error {
	if cfg.Billboard.Chart == "" {
		return fmt.Errorf("billboard.chart is required")
	}
	switch cfg.Strategy {
	case "article", "embedded":
	default:
		return fmt.Errorf("unknown strategy %q (valid: article, embedded)", cfg.Strategy)
	}
	return nil
}
