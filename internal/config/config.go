// Package config loads the settings shared by the rema commands.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the matrix geometry and execution settings.
type Config struct {
	// Bins is the number of 1 keV bins per matrix axis.
	Bins int `yaml:"bins"`

	// Binning is the rebinning factor applied before uncertainty evaluation.
	// Bins must be a multiple of it.
	Binning int `yaml:"binning"`

	// Spectrum is the name of the simulated spectrum inside each source
	// container.
	Spectrum string `yaml:"spectrum"`

	// Workers is the number of bins processed concurrently.
	Workers int `yaml:"workers"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Bins:     12000,
		Binning:  10,
		Spectrum: "",
		Workers:  1,
		LogLevel: "info",
	}
}

// Load returns the defaults overlaid with the YAML file at path (if path is
// not empty) and then with environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file on top of the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Bins <= 0 {
		return fmt.Errorf("bins must be positive, got %d", c.Bins)
	}
	if c.Binning <= 0 {
		return fmt.Errorf("binning must be positive, got %d", c.Binning)
	}
	if c.Bins%c.Binning != 0 {
		return fmt.Errorf("bins (%d) must be a multiple of binning (%d)", c.Bins, c.Binning)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.LogLevel)
	}
	return nil
}

func applyEnvOverrides(c *Config) error {
	for _, o := range []struct {
		env string
		dst *int
	}{
		{"REMA_BINS", &c.Bins},
		{"REMA_BINNING", &c.Binning},
		{"REMA_WORKERS", &c.Workers},
	} {
		v := os.Getenv(o.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", o.env, err)
		}
		*o.dst = n
	}
	return nil
}
