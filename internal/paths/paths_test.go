package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBaseDir(t *testing.T) {
	t.Run("default uses home directory", func(t *testing.T) {
		t.Setenv(EnvWeeklyDir, "")

		dir, err := BaseDir()
		if err != nil {
			t.Fatalf("BaseDir() error = %v", err)
		}
		home, _ := os.UserHomeDir()
		if expected := filepath.Join(home, ".weekly"); dir != expected {
			t.Errorf("BaseDir() = %q, want %q", dir, expected)
		}
	})

	t.Run("WEEKLY_DIR overrides default", func(t *testing.T) {
		t.Setenv(EnvWeeklyDir, "/tmp/weekly-test")

		dir, err := BaseDir()
		if err != nil {
			t.Fatalf("BaseDir() error = %v", err)
		}
		if dir != "/tmp/weekly-test" {
			t.Errorf("BaseDir() = %q, want %q", dir, "/tmp/weekly-test")
		}
	})
}

func TestConfigPath(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvWeeklyDir, "")
		t.Setenv(EnvConfigPath, "")

		path, err := ConfigPath()
		if err != nil {
			t.Fatalf("ConfigPath() error = %v", err)
		}
		home, _ := os.UserHomeDir()
		if expected := filepath.Join(home, ".config", "weekly", "config.toml"); path != expected {
			t.Errorf("ConfigPath() = %q, want %q", path, expected)
		}
	})

	t.Run("WEEKLY_DIR override", func(t *testing.T) {
		t.Setenv(EnvWeeklyDir, "/tmp/weekly-test")
		t.Setenv(EnvConfigPath, "")

		path, err := ConfigPath()
		if err != nil {
			t.Fatalf("ConfigPath() error = %v", err)
		}
		if expected := "/tmp/weekly-test/config/config.toml"; path != expected {
			t.Errorf("ConfigPath() = %q, want %q", path, expected)
		}
	})

	t.Run("WEEKLY_CONFIG wins", func(t *testing.T) {
		t.Setenv(EnvWeeklyDir, "/tmp/weekly-test")
		t.Setenv(EnvConfigPath, "/etc/weekly.toml")

		path, err := ConfigPath()
		if err != nil {
			t.Fatalf("ConfigPath() error = %v", err)
		}
		if path != "/etc/weekly.toml" {
			t.Errorf("ConfigPath() = %q, want %q", path, "/etc/weekly.toml")
		}
	})
}

func TestLogPath(t *testing.T) {
	t.Setenv(EnvWeeklyDir, "/tmp/weekly-test")

	if got := LogPath(); got != "/tmp/weekly-test/weekly.log" {
		t.Errorf("LogPath() = %q, want %q", got, "/tmp/weekly-test/weekly.log")
	}
}
