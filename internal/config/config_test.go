package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults_AreValid(t *testing.T) {
	cfg := New()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 300*time.Millisecond, cfg.Window())
	assert.Equal(t, 50, cfg.Search.MaxResults)
	assert.Equal(t, 128, cfg.Search.CacheSize)
	assert.Equal(t, time.Duration(0), cfg.Latency())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EmptyPath_ReturnsDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, cfg.Window())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	// Given: a config file changing pipeline settings
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
search:
  debounce_window: 150ms
  max_results: 10
provider:
  latency: 250ms
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When: loaded
	cfg, err := Load(path)

	// Then: file values win over defaults, untouched fields keep defaults
	require.NoError(t, err)
	assert.Equal(t, 150*time.Millisecond, cfg.Window())
	assert.Equal(t, 10, cfg.Search.MaxResults)
	assert.Equal(t, 250*time.Millisecond, cfg.Latency())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 128, cfg.Search.CacheSize)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	// Given: a config file and a conflicting environment variable
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  debounce_window: 150ms\n"), 0o644))
	t.Setenv("TYPEAHEAD_DEBOUNCE_WINDOW", "75ms")
	t.Setenv("TYPEAHEAD_MAX_RESULTS", "7")

	// When: loaded
	cfg, err := Load(path)

	// Then: the environment wins
	require.NoError(t, err)
	assert.Equal(t, 75*time.Millisecond, cfg.Window())
	assert.Equal(t, 7, cfg.Search.MaxResults)
}

func TestLoad_MissingFile_Fails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unparseable window", func(c *Config) { c.Search.DebounceWindow = "soon" }},
		{"negative window", func(c *Config) { c.Search.DebounceWindow = "-1s" }},
		{"negative max results", func(c *Config) { c.Search.MaxResults = -1 }},
		{"zero cache size", func(c *Config) { c.Search.CacheSize = 0 }},
		{"unparseable latency", func(c *Config) { c.Provider.Latency = "fast" }},
		{"negative latency", func(c *Config) { c.Provider.Latency = "-5ms" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
