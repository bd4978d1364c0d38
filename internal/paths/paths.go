// Package paths provides a single source of truth for weekly file paths.
// All path helpers honor environment variable overrides for isolated testing.
//
// Path resolution precedence:
//  1. WEEKLY_CONFIG names the config file directly
//  2. WEEKLY_DIR sets the base directory (derives config and log paths)
//  3. Default behavior (~/.weekly, ~/.config/weekly) when no env vars are set
package paths

import (
	"os"
	"path/filepath"
)

// Environment variable names for path overrides.
const (
	// EnvWeeklyDir is the base directory override (e.g., /tmp/weekly-test).
	EnvWeeklyDir = "WEEKLY_DIR"

	// EnvConfigPath overrides the config file path directly.
	EnvConfigPath = "WEEKLY_CONFIG"
)

// BaseDir returns the weekly base directory (~/.weekly by default).
func BaseDir() (string, error) {
	if dir := os.Getenv(EnvWeeklyDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".weekly"), nil
}

// ConfigDir returns the config directory (~/.config/weekly by default).
// When WEEKLY_DIR is set, returns WEEKLY_DIR/config instead.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvWeeklyDir); dir != "" {
		return filepath.Join(dir, "config"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "weekly"), nil
}

// ConfigPath returns the path to the config file.
// Precedence: WEEKLY_CONFIG > ConfigDir()/config.toml
func ConfigPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the default log file path (~/.weekly/weekly.log).
func LogPath() string {
	base, err := BaseDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "weekly.log")
	}
	return filepath.Join(base, "weekly.log")
}
