// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults applied by Load when a field is unset.
const (
	DefaultLogLevel        = "info"
	DefaultRequestInterval = 200 * time.Millisecond
	DefaultConcurrency     = 1
	DefaultSyncInterval    = 5 * time.Minute
)

// Config is the root configuration structure.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Jellyfin JellyfinConfig `toml:"jellyfin"`
	Plex     PlexConfig     `toml:"plex"`
	Sync     SyncConfig     `toml:"sync"`
}

type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
}

// JellyfinConfig is the source server.
type JellyfinConfig struct {
	URL      string `toml:"url"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	DeviceID string `toml:"device_id"`
}

// PlexConfig is the target server.
type PlexConfig struct {
	URL             string   `toml:"url"`
	Token           string   `toml:"token"`
	RequestInterval Duration `toml:"request_interval"`
	Concurrency     int      `toml:"concurrency"`
}

type SyncConfig struct {
	Played   bool     `toml:"played"`
	DryRun   bool     `toml:"dry_run"`
	Interval Duration `toml:"interval"`
}

// Duration is a time.Duration written as a Go duration string ("200ms").
// It remembers whether the key was present so an explicit "0s" is not
// replaced by a default.
type Duration struct {
	time.Duration
	set bool
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	d.set = true
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load reads, parses and validates the configuration file. Unresolved
// environment variables and validation failures are reported together in a
// *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, failing only
// on unresolved environment variables.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}
	return cfg, nil
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = DefaultLogLevel
	}
	if !c.Plex.RequestInterval.set {
		c.Plex.RequestInterval = Duration{Duration: DefaultRequestInterval, set: true}
	}
	if c.Plex.Concurrency == 0 {
		c.Plex.Concurrency = DefaultConcurrency
	}
	if !c.Sync.Interval.set {
		c.Sync.Interval = Duration{Duration: DefaultSyncInterval, set: true}
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars expands environment references in content. References
// that cannot be resolved are left in place and reported in missing, as
// "VAR" or "VAR: message" for the :? form. Empty values count as unset for
// both :- and :?.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if value == "" {
				return arg
			}
			return value
		case ":?":
			if value == "" {
				missing = append(missing, name+": "+strings.TrimSpace(arg))
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return out, missing
}
