package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/natemoore/tix/internal/cache"
)

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
api_token = "abc123"

[cache]
enabled = false
ttl = "10m"

[ui]
accent = "#FF8800"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.APIToken != "abc123" {
		t.Errorf("APIToken = %q", cfg.APIToken)
	}
	if cfg.Cache.Enabled {
		t.Error("Cache.Enabled = true, want false")
	}
	if got := cfg.CacheTTL(); got != 10*time.Minute {
		t.Errorf("CacheTTL() = %v, want 10m", got)
	}
	if cfg.UI.Accent != "#FF8800" {
		t.Errorf("UI.Accent = %q", cfg.UI.Accent)
	}
}

func TestLoadFromKeepsDefaultsForAbsentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_token = "abc"`), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if !cfg.Cache.Enabled {
		t.Error("cache should default to enabled")
	}
	if got := cfg.CacheTTL(); got != 5*time.Minute {
		t.Errorf("CacheTTL() = %v, want default 5m", got)
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_token = [broken`), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestResolveTokenPrecedence(t *testing.T) {
	cfg := &Config{APIToken: "from-config"}

	t.Setenv(EnvToken, "")
	if got := cfg.ResolveToken(""); got != "from-config" {
		t.Errorf("ResolveToken = %q, want config value", got)
	}

	t.Setenv(EnvToken, "from-env")
	if got := cfg.ResolveToken(""); got != "from-env" {
		t.Errorf("ResolveToken = %q, want env value", got)
	}

	if got := cfg.ResolveToken("from-flag"); got != "from-flag" {
		t.Errorf("ResolveToken = %q, want flag value", got)
	}
}

func TestCacheTTLFallsBackOnGarbage(t *testing.T) {
	cfg := &Config{Cache: CacheConfig{TTL: "not-a-duration"}}
	if got := cfg.CacheTTL(); got != cache.DefaultTTL {
		t.Errorf("CacheTTL() = %v, want default", got)
	}
}
