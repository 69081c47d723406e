package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the config schema version written by this build.
const CurrentVersion = "1.0"

// Config is the root configuration record. It is assembled from built-in
// defaults, the global config file, and an optional project-local overlay,
// in that order.
type Config struct {
	// Version is the config schema version, gated by CheckVersion on load.
	Version string `yaml:"version"`

	// Slider holds the carousel widget settings.
	Slider SliderConfig `yaml:"slider"`

	// Logging holds the log level, format, and destination settings.
	Logging LoggingConfig `yaml:"logging"`

	// Catalog holds the product catalog source settings.
	Catalog CatalogConfig `yaml:"catalog"`
}

// CatalogConfig selects where the demo catalog is loaded from.
type CatalogConfig struct {
	// Path is a YAML file or directory of YAML files. Empty means the
	// built-in sample catalog.
	Path string `yaml:"path,omitempty"`

	// Currency is the ISO 4217 display currency for prices without one.
	Currency string `yaml:"currency,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Slider:  DefaultSliderConfig(),
		Logging: DefaultLoggingConfig(),
		Catalog: CatalogConfig{Currency: "USD"},
	}
}

// New creates a Config from defaults, overlaid with the global config file
// when one exists. A missing global file is not an error; an unreadable or
// incompatible one is silently skipped so a broken config never bricks the
// CLI (warnings surface once logging is up, via Validate).
func New() *Config {
	cfg := DefaultConfig()

	path, err := GetConfigPath()
	if err != nil {
		return cfg
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return cfg
	}
	if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
		return DefaultConfig()
	}
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}
	return cfg
}

// LoadFromPath reads a complete config from an explicit file, applying it
// over defaults. Unlike New, errors are reported.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}
	if err := CheckVersion(cfg.Version); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to the given path, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(path), 0o750); mkdirErr != nil {
		return fmt.Errorf("creating config directory: %w", mkdirErr)
	}

	if writeErr := os.WriteFile(path, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing config to %s: %w", path, writeErr)
	}
	return nil
}

// Validate checks the config for problems a user should fix. It collects
// every finding rather than stopping at the first.
func (c *Config) Validate() []error {
	var errs []error

	if err := CheckVersion(c.Version); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, c.Slider.Validate()...)
	errs = append(errs, c.Logging.Validate()...)

	if c.Catalog.Path != "" {
		if _, err := os.Stat(c.Catalog.Path); err != nil {
			errs = append(errs, fmt.Errorf("catalog path %q: %w", c.Catalog.Path, err))
		}
	}

	return errs
}

// GetConfigPath returns the path of the global config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
