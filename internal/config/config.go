// Package config loads and validates typeahead configuration.
//
// Configuration hierarchy (later wins):
//  1. Hardcoded defaults (New)
//  2. Config file (yaml)
//  3. Environment variables (TYPEAHEAD_*)
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete typeahead configuration.
type Config struct {
	Version  int            `yaml:"version"`
	Search   SearchConfig   `yaml:"search"`
	Provider ProviderConfig `yaml:"provider"`
	Log      LogConfig      `yaml:"log"`
}

// SearchConfig configures the query pipeline.
type SearchConfig struct {
	// DebounceWindow is the quiet period before a query is looked up,
	// as a Go duration string (e.g. "300ms").
	DebounceWindow string `yaml:"debounce_window"`

	// MaxResults caps how many items the UI renders. 0 means no cap.
	MaxResults int `yaml:"max_results"`

	// CacheSize is the number of query results memoized in-process.
	CacheSize int `yaml:"cache_size"`
}

// ProviderConfig configures the search provider.
type ProviderConfig struct {
	// DatasetPath points at a newline-delimited item file.
	// Empty means the embedded default dataset.
	DatasetPath string `yaml:"dataset_path"`

	// Latency is an artificial per-lookup delay for demos,
	// as a Go duration string. "0" disables it.
	Latency string `yaml:"latency"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Version: 1,
		Search: SearchConfig{
			DebounceWindow: "300ms",
			MaxResults:     50,
			CacheSize:      128,
		},
		Provider: ProviderConfig{
			Latency: "0s",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds a Config from defaults, an optional yaml file, and environment
// overrides, then validates it. An empty path skips the file layer.
func Load(path string) (*Config, error) {
	cfg := New()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays TYPEAHEAD_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("TYPEAHEAD_DEBOUNCE_WINDOW"); v != "" {
		c.Search.DebounceWindow = v
	}
	if v := os.Getenv("TYPEAHEAD_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Search.MaxResults = n
		}
	}
	if v := os.Getenv("TYPEAHEAD_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Search.CacheSize = n
		}
	}
	if v := os.Getenv("TYPEAHEAD_DATASET"); v != "" {
		c.Provider.DatasetPath = v
	}
	if v := os.Getenv("TYPEAHEAD_LATENCY"); v != "" {
		c.Provider.Latency = v
	}
	if v := os.Getenv("TYPEAHEAD_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	w, err := time.ParseDuration(c.Search.DebounceWindow)
	if err != nil {
		return fmt.Errorf("invalid debounce_window %q: %w", c.Search.DebounceWindow, err)
	}
	if w < 0 {
		return fmt.Errorf("debounce_window must not be negative, got %s", w)
	}

	if c.Search.MaxResults < 0 {
		return fmt.Errorf("max_results must not be negative, got %d", c.Search.MaxResults)
	}
	if c.Search.CacheSize < 1 {
		return fmt.Errorf("cache_size must be at least 1, got %d", c.Search.CacheSize)
	}

	if c.Provider.Latency != "" {
		d, err := time.ParseDuration(c.Provider.Latency)
		if err != nil {
			return fmt.Errorf("invalid provider latency %q: %w", c.Provider.Latency, err)
		}
		if d < 0 {
			return fmt.Errorf("provider latency must not be negative, got %s", d)
		}
	}

	return nil
}

// Window returns the parsed debounce window.
// Call only after Validate has succeeded.
func (c *Config) Window() time.Duration {
	w, _ := time.ParseDuration(c.Search.DebounceWindow)
	return w
}

// Latency returns the parsed artificial provider latency.
// Call only after Validate has succeeded.
func (c *Config) Latency() time.Duration {
	if c.Provider.Latency == "" {
		return 0
	}
	d, _ := time.ParseDuration(c.Provider.Latency)
	return d
}
