// Package config handles loading and managing scorelens configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for scorelens.
type Config struct {
	Analytics AnalyticsConfig `yaml:"analytics"`
	Output    OutputConfig    `yaml:"output"`
}

// AnalyticsConfig controls trend windows and anomaly thresholds.
// Environment variables override file values.
type AnalyticsConfig struct {
	TrendWindowMonths int `yaml:"trend_window_months" env:"SCORELENS_TREND_WINDOW_MONTHS"`
	AnomalyWindowDays int `yaml:"anomaly_window_days" env:"SCORELENS_ANOMALY_WINDOW_DAYS"`

	DropWarning  int `yaml:"drop_warning" env:"SCORELENS_DROP_WARNING"`
	DropCritical int `yaml:"drop_critical" env:"SCORELENS_DROP_CRITICAL"`

	SpreadWarning  int `yaml:"spread_warning" env:"SCORELENS_SPREAD_WARNING"`
	SpreadCritical int `yaml:"spread_critical" env:"SCORELENS_SPREAD_CRITICAL"`

	StagnationRange      int `yaml:"stagnation_range" env:"SCORELENS_STAGNATION_RANGE"`
	StagnationMinSamples int `yaml:"stagnation_min_samples" env:"SCORELENS_STAGNATION_MIN_SAMPLES"`

	ExpirationInfoMonths     int `yaml:"expiration_info_months" env:"SCORELENS_EXPIRATION_INFO_MONTHS"`
	ExpirationCriticalMonths int `yaml:"expiration_critical_months" env:"SCORELENS_EXPIRATION_CRITICAL_MONTHS"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format string `yaml:"format" env:"SCORELENS_OUTPUT_FORMAT"` // text, json, markdown
	Locale string `yaml:"locale" env:"SCORELENS_LOCALE"`        // BCP 47 tag for number formatting
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analytics: AnalyticsConfig{
			TrendWindowMonths: 6,
			AnomalyWindowDays: 90,

			DropWarning:  30,
			DropCritical: 60,

			SpreadWarning:  40,
			SpreadCritical: 80,

			StagnationRange:      10,
			StagnationMinSamples: 2,

			ExpirationInfoMonths:     78,
			ExpirationCriticalMonths: 82,
		},
		Output: OutputConfig{
			Format: "text",
			Locale: "en-US",
		},
	}
}

// Load reads a config file from the given path, then applies
// environment overrides. If the file does not exist, it returns the
// default config (still subject to env overrides).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return applyEnv(cfg)
}

func applyEnv(cfg *Config) (*Config, error) {
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing env overrides: %w", err)
	}
	return cfg, nil
}

// FindConfigFile looks for .scorelens/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".scorelens", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the cache directory for a given workspace path.
// Uses ~/.cache/scorelens/<workspace-slug>/ to avoid polluting the
// workspace.
func CacheDir(workspacePath string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	slug := workspaceSlug(workspacePath)
	return filepath.Join(home, ".cache", "scorelens", slug)
}

// ReportDir returns the saved report directory for a workspace.
func ReportDir(workspacePath string) string {
	return filepath.Join(CacheDir(workspacePath), "reports")
}

// DossierDir returns the compiled dossier storage directory for a
// workspace.
func DossierDir(workspacePath string) string {
	return filepath.Join(CacheDir(workspacePath), "dossiers")
}

// workspaceSlug creates a filesystem-safe identifier from a workspace
// path. Uses the last two path components (e.g., "clients_smith" from
// "/home/user/clients/smith").
func workspaceSlug(workspacePath string) string {
	abs, err := filepath.Abs(workspacePath)
	if err != nil {
		abs = workspacePath
	}
	// Use last two path components for readability
	dir := filepath.Base(filepath.Dir(abs))
	base := filepath.Base(abs)
	return dir + "_" + base
}

// FindWorkspaceRoot walks up from dir looking for a .scorelens
// directory, which marks the root of a practice workspace.
func FindWorkspaceRoot(dir string) (string, error) {
	for {
		candidate := filepath.Join(dir, ".scorelens")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("no scorelens workspace found (looked for a .scorelens directory)")
}
