package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		General:  GeneralConfig{LogLevel: "info"},
		Jellyfin: JellyfinConfig{URL: "http://localhost:8096", Username: "alice", Password: "secret"},
		Plex: PlexConfig{
			URL:             "http://localhost:32400",
			Token:           "tok",
			RequestInterval: Duration{Duration: DefaultRequestInterval, set: true},
			Concurrency:     1,
		},
		Sync: SyncConfig{Interval: Duration{Duration: DefaultSyncInterval, set: true}},
	}
}

func TestValidate_MinimalValid(t *testing.T) {
	errs := validConfig().Validate()
	assert.Empty(t, errs, "expected no errors for minimal valid config")
}

func TestValidate_Empty(t *testing.T) {
	errs := (&Config{}).Validate()
	for _, field := range []string{"jellyfin.url", "jellyfin.username", "plex.url", "plex.token"} {
		assert.True(t, containsErrorBoth(errs, field, "required"), "expected %s error, got %v", field, errs)
	}
}

func TestValidate_Fields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"log level", func(c *Config) { c.General.LogLevel = "verbose" }, "general.log_level"},
		{"jellyfin scheme", func(c *Config) { c.Jellyfin.URL = "ftp://media.local" }, "jellyfin.url"},
		{"plex host", func(c *Config) { c.Plex.URL = "http://" }, "plex.url"},
		{"negative interval", func(c *Config) { c.Plex.RequestInterval.Duration = -time.Second }, "plex.request_interval"},
		{"negative concurrency", func(c *Config) { c.Plex.Concurrency = -2 }, "plex.concurrency"},
		{"zero sync interval", func(c *Config) { c.Sync.Interval.Duration = 0 }, "sync.interval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			errs := cfg.Validate()
			assert.Len(t, errs, 1)
			assert.True(t, containsError(errs, tt.field), "expected %s error, got %v", tt.field, errs)
		})
	}
}

func TestValidate_ZeroRequestIntervalAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.Plex.RequestInterval = Duration{set: true}
	assert.Empty(t, cfg.Validate())
}

func TestValidLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", ""} {
		assert.True(t, ValidLogLevel(level), level)
	}
	for _, level := range []string{"loud", "INFO", "trace"} {
		assert.False(t, ValidLogLevel(level), level)
	}
}

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func containsErrorBoth(errs []string, substr1, substr2 string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr1) && strings.Contains(e, substr2) {
			return true
		}
	}
	return false
}
