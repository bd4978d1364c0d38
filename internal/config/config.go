// Package config loads and validates weekly's configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	_ "time/tzdata" // zone database for hosts without one

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/tessro/weekly/internal/github"
	"github.com/tessro/weekly/internal/output"
)

// Defaults.
const (
	DefaultTimezone = "Asia/Dhaka"
	DefaultLogLevel = "info"
	DefaultDotenv   = ".env"
)

// Environment variables consulted for the GitHub token, in order.
var TokenEnvVars = []string{"GITHUB_TOKEN", "GH_TOKEN"}

// Config is the complete weekly configuration.
type Config struct {
	// Timezone is the IANA zone that defines "today" for a report.
	Timezone string `toml:"timezone" validate:"required"`

	// OutputDir is where reports are written, relative to the working directory.
	OutputDir string `toml:"output-dir" validate:"required"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log-level" validate:"omitempty,oneof=debug info warn error"`

	GitHub GitHubConfig `toml:"github"`
	Report ReportConfig `toml:"report"`
}

// GitHubConfig configures the GraphQL client.
type GitHubConfig struct {
	Endpoint string   `toml:"endpoint" validate:"required,url"`
	Token    string   `toml:"token"`
	Timeout  Duration `toml:"timeout" validate:"gte=0"`
}

// ReportConfig holds report output options.
type ReportConfig struct {
	// HTML also writes an HTML rendering next to each Markdown report.
	HTML bool `toml:"html"`
}

// Duration is a time.Duration read from a string such as "30s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Timezone:  DefaultTimezone,
		OutputDir: output.DefaultDir,
		LogLevel:  DefaultLogLevel,
		GitHub: GitHubConfig{
			Endpoint: github.DefaultEndpoint,
			Timeout:  Duration(github.DefaultTimeout),
		},
	}
}

// Load reads the TOML file at path over the defaults and validates the result.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location loads the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, &ValidationError{
			Field:   "timezone",
			Value:   c.Timezone,
			Message: "unknown time zone",
			Err:     ErrInvalidTimezone,
		}
	}
	return loc, nil
}

// ClientOptions builds GitHub client options using token.
func (c *Config) ClientOptions(token string) github.Options {
	return github.Options{
		Endpoint: c.GitHub.Endpoint,
		Token:    token,
		Timeout:  time.Duration(c.GitHub.Timeout),
	}
}

// ResolveToken picks the GitHub credential. Precedence: explicit value,
// config file, GITHUB_TOKEN in the dotenv file, then the process environment.
// The dotenv file is read without modifying the environment. It returns the
// token and a short description of where it came from.
func (c *Config) ResolveToken(explicit, dotenvPath string) (token, source string) {
	if explicit != "" {
		return explicit, "argument"
	}
	if c != nil && c.GitHub.Token != "" {
		return c.GitHub.Token, "config"
	}
	if dotenvPath != "" {
		if env, err := godotenv.Read(dotenvPath); err == nil {
			for _, name := range TokenEnvVars {
				if v := env[name]; v != "" {
					return v, dotenvPath
				}
			}
		}
	}
	for _, name := range TokenEnvVars {
		if v := os.Getenv(name); v != "" {
			return v, name
		}
	}
	return "", ""
}
