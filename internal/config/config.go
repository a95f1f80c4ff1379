// Package config handles global tix configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/natemoore/tix/internal/cache"
)

// EnvToken is the environment variable consulted for the API token.
const EnvToken = "TODOIST_API_TOKEN"

// Config is the global tix configuration.
type Config struct {
	// APIToken is the Todoist API token. The TODOIST_API_TOKEN environment
	// variable and the --token flag take precedence.
	APIToken string `toml:"api_token"`

	// BaseURL overrides the Todoist API endpoint (rare; mainly for tests
	// and proxies).
	BaseURL string `toml:"base_url"`

	// Cache controls the on-disk response cache.
	Cache CacheConfig `toml:"cache"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// CacheConfig controls the response cache.
type CacheConfig struct {
	// Enabled toggles the cache entirely.
	Enabled bool `toml:"enabled"`

	// TTL is how long cached responses stay fresh (Go duration syntax,
	// e.g. "5m", "1h").
	TTL string `toml:"ttl"`

	// Path overrides the cache database location.
	Path string `toml:"path"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled: true,
			TTL:     "5m",
		},
	}
}

// Load loads the configuration from the default location.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path. Keys absent from
// the file keep their defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/tix/config.toml first (XDG style),
// then falls back to the OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "tix", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "tix", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// CreateDefault creates a default config file if it doesn't exist.
func CreateDefault() (string, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil // Already exists
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# tix configuration

# Todoist API token (Settings -> Integrations -> Developer).
# The TODOIST_API_TOKEN environment variable takes precedence.
# api_token = ""

# Response cache (cached task/project listings).
# [cache]
# enabled = true
# ttl = "5m"

# Optional UI accent color for terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0600); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}

// ResolveToken returns the API token, in precedence order: the flag value,
// the TODOIST_API_TOKEN environment variable, then the config file.
func (c *Config) ResolveToken(flagValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(EnvToken)); v != "" {
		return v
	}
	return strings.TrimSpace(c.APIToken)
}

// CacheTTL parses the configured cache TTL, falling back to the default
// when unset or invalid.
func (c *Config) CacheTTL() time.Duration {
	if c.Cache.TTL == "" {
		return cache.DefaultTTL
	}
	ttl, err := time.ParseDuration(c.Cache.TTL)
	if err != nil || ttl <= 0 {
		return cache.DefaultTTL
	}
	return ttl
}

// CachePath returns the cache database path, honoring the config override.
func (c *Config) CachePath() string {
	if c.Cache.Path != "" {
		return c.Cache.Path
	}
	return cache.DefaultPath()
}
