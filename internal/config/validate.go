package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// ValidLogLevel reports whether level is an accepted log level.
// The empty string selects the default.
func ValidLogLevel(level string) bool {
	return validLogLevels[level]
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !ValidLogLevel(c.General.LogLevel) {
		errs = append(errs, fmt.Sprintf("general.log_level: must be one of debug, info, warn, error; got %q", c.General.LogLevel))
	}

	errs = append(errs, validateURL("jellyfin.url", c.Jellyfin.URL)...)
	if c.Jellyfin.Username == "" {
		errs = append(errs, "jellyfin.username: required")
	}

	errs = append(errs, validateURL("plex.url", c.Plex.URL)...)
	if c.Plex.Token == "" {
		errs = append(errs, "plex.token: required")
	}
	if c.Plex.RequestInterval.Duration < 0 {
		errs = append(errs, fmt.Sprintf("plex.request_interval: must not be negative, got %s", c.Plex.RequestInterval.Duration))
	}
	if c.Plex.Concurrency < 0 {
		errs = append(errs, fmt.Sprintf("plex.concurrency: must be at least 1, got %d", c.Plex.Concurrency))
	}

	if c.Sync.Interval.set && c.Sync.Interval.Duration <= 0 {
		errs = append(errs, fmt.Sprintf("sync.interval: must be positive, got %s", c.Sync.Interval.Duration))
	}

	return errs
}

func validateURL(field, raw string) []string {
	if raw == "" {
		return []string{field + ": required"}
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return []string{fmt.Sprintf("%s: must be an http(s) URL, got %q", field, raw)}
	}
	return nil
}
