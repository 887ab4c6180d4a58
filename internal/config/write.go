package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigDir returns the timebox config directory path.
// Uses $XDG_CONFIG_HOME/timebox if set, otherwise ~/.config/timebox.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "timebox")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "timebox")
}

// WriteDefault writes a default config.toml for the given GitHub owner.
// Returns the config file path. Skips if config.toml already exists.
func WriteDefault(owner string) (string, error) {
	dir := ConfigDir()
	path := filepath.Join(dir, "config.toml")

	if _, err := os.Stat(path); err == nil {
		return path, nil // already exists
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	content := fmt.Sprintf(`owner = %q
token_env = "GITHUB_PAT"
base_url = "https://api.github.com"
window_days = 7

[quiet_hours]
start = 22
end = 7

[archive]
compress = true
`, owner)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	return path, nil
}
