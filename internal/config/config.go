package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all timebox configuration.
type Config struct {
	Owner      string `toml:"owner"`
	TokenEnv   string `toml:"token_env"`
	BaseURL    string `toml:"base_url"`
	WindowDays int    `toml:"window_days"`

	Quiet   QuietConfig   `toml:"quiet_hours"`
	Archive ArchiveConfig `toml:"archive"`
}

// QuietConfig is an hour-of-day interval during which no session
// recommendations are produced. Start may be greater than End for
// intervals that wrap past midnight (the default 22:00-07:00 does).
type QuietConfig struct {
	Start int `toml:"start"`
	End   int `toml:"end"`
}

type ArchiveConfig struct {
	Compress bool `toml:"compress"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Owner:      "",
		TokenEnv:   "GITHUB_PAT",
		BaseURL:    "https://api.github.com",
		WindowDays: 7,
		Quiet: QuietConfig{
			Start: 22,
			End:   7,
		},
		Archive: ArchiveConfig{
			Compress: true,
		},
	}
}

// Load reads config from the standard path, falling back to defaults.
// GITHUB_OWNER, when set, overrides the configured owner.
func Load() (Config, error) {
	cfg := DefaultConfig()

	paths := configPaths()
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	if owner := os.Getenv("GITHUB_OWNER"); owner != "" {
		cfg.Owner = owner
	}
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = 7
	}

	return cfg, nil
}

// Token returns the remote API credential, or "" when the environment
// variable named by token_env is unset. An absent credential is a valid
// state: remote calls proceed unauthenticated at lower rate limits.
func (c Config) Token() string {
	if c.TokenEnv == "" {
		return ""
	}
	return os.Getenv(c.TokenEnv)
}

// Contains reports whether t falls inside the quiet-hours interval.
// Only the wall-clock hour is compared.
func (q QuietConfig) Contains(t time.Time) bool {
	h := t.Hour()
	if q.Start < q.End {
		return q.Start <= h && h < q.End
	}
	return h >= q.Start || h < q.End
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "timebox", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "timebox", "config.toml"))
	}

	return paths
}
