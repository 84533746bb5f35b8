package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.Billboard.Chart == "" {
		t.Error("expected a default chart slug")
	}
	if cfg.Strategy != "article" {
		t.Errorf("default strategy = %q, want article", cfg.Strategy)
	}
	if cfg.UserAgent == "" {
		t.Error("expected a default user agent")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `billboard:
  chart: billboard-200
  week: "2023-06-10"
strategy: embedded
cache_dir: /tmp/chartsync-test
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Billboard.Chart != "billboard-200" {
		t.Errorf("chart = %q, want billboard-200", cfg.Billboard.Chart)
	}
	if cfg.Billboard.Week != "2023-06-10" {
		t.Errorf("week = %q, want 2023-06-10", cfg.Billboard.Week)
	}
	if cfg.Strategy != "embedded" {
		t.Errorf("strategy = %q, want embedded", cfg.Strategy)
	}
	// Fields the file left out are backfilled from defaults.
	if cfg.UserAgent == "" {
		t.Error("expected user agent backfilled from defaults")
	}
}

func TestLoadFileWithoutBillboardSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("strategy: embedded\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Billboard.Chart != "hot-100" {
		t.Errorf("chart = %q, want default hot-100", cfg.Billboard.Chart)
	}
	if cfg.Billboard.Week == "" {
		t.Error("expected default week backfilled")
	}
	if cfg.Strategy != "embedded" {
		t.Errorf("strategy = %q, want embedded kept from file", cfg.Strategy)
	}
}

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Billboard.Chart == "" {
		t.Error("expected defaults when config file is missing")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected defaults written to %s: %v", path, err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("billboard: [broken"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `billboard:
  chart: hot-100
  week: "2022-01-08"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("CHARTSYNC_CHART", "billboard-global-200")
	t.Setenv("CHARTSYNC_WEEK", "2024-03-02")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Billboard.Chart != "billboard-global-200" {
		t.Errorf("chart = %q, want env override", cfg.Billboard.Chart)
	}
	if cfg.Billboard.Week != "2024-03-02" {
		t.Errorf("week = %q, want env override", cfg.Billboard.Week)
	}
}

func TestValidateStrategy(t *testing.T) {
	cfg := &Config{Billboard: BillboardConfig{Chart: "hot-100"}, Strategy: "magic"}
	if err := validate(cfg); err == nil {
		t.Error("expected error for unknown strategy")
	}
	cfg.Strategy = "embedded"
	if err := validate(cfg); err != nil {
		t.Errorf("unexpected error for embedded strategy: %v", err)
	}
}

func TestValidateMissingChart(t *testing.T) {
	cfg := &Config{Strategy: "article"}
	if err := validate(cfg); err == nil {
		t.Error("expected error for missing chart slug")
	}
}

func TestCacheLayout(t *testing.T) {
	cfg := &Config{CacheDir: "/var/cache/chartsync"}
	if got := cfg.RootDir(); got != "/var/cache/chartsync" {
		t.Errorf("RootDir = %q", got)
	}
	if got := cfg.ChartCacheDir(); got != filepath.Join("/var/cache/chartsync", "billboard.com", "charts") {
		t.Errorf("ChartCacheDir = %q", got)
	}
	if got := cfg.WebCacheDir(); got != filepath.Join("/var/cache/chartsync", "web-cache") {
		t.Errorf("WebCacheDir = %q", got)
	}
}

func TestRootDirDefaultsToXDG(t *testing.T) {
	cfg := &Config{}
	root := cfg.RootDir()
	if root == "" {
		t.Fatal("expected a non-empty default root")
	}
	if filepath.Base(root) != "chartsync" {
		t.Errorf("default root = %q, want a chartsync directory", root)
	}
}
