// Package cli implements the weekly command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tessro/weekly/internal/config"
	"github.com/tessro/weekly/internal/logging"
	"github.com/tessro/weekly/internal/paths"
)

// Env carries the process collaborators used by commands.
type Env struct {
	Fs         afero.Fs         // filesystem for reports and published pages
	Now        func() time.Time // clock
	HTTPClient *http.Client     // base transport for GitHub; nil uses the default
	Stdout     io.Writer
	Stderr     io.Writer
	Dotenv     string // dotenv file consulted for a token; empty disables
}

// DefaultEnv returns the environment of a real process.
func DefaultEnv() *Env {
	return &Env{
		Fs:     afero.NewOsFs(),
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Dotenv: config.DefaultDotenv,
	}
}

// app is the state shared by one command invocation.
type app struct {
	env *Env
	cfg *config.Config

	configPath string
	logLevel   string
	logFile    string
	weeklyDir  string

	closeLog func()
}

// NewRootCommand builds the weekly command tree bound to env.
func NewRootCommand(env *Env) *cobra.Command {
	a := &app{env: env, closeLog: func() {}}

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Weekly status reports from GitHub issues",
		Long: "weekly builds a Markdown status report from a repository's recent issues and " +
			"the fields of the project board they are tracked on.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.closeLog()
		},
	}
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ~/.config/weekly/config.toml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFile, "log-file", "", "append JSON logs to this file instead of stderr")
	flags.StringVar(&a.weeklyDir, "weekly-dir", "", "base directory for weekly data (overrides ~/.weekly)")

	cmd.AddCommand(
		newReportCommand(a),
		newRecordsCommand(a),
		newFieldsCommand(a),
		newPublishCommand(a),
		newVersionCommand(),
	)
	return cmd
}

// setup loads configuration and installs the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	// Set WEEKLY_DIR if --weekly-dir is provided so path helpers use the override.
	if a.weeklyDir != "" {
		if err := os.Setenv(paths.EnvWeeklyDir, a.weeklyDir); err != nil {
			return err
		}
	}

	path := a.configPath
	if path == "" {
		p, err := paths.ConfigPath()
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := a.logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	if a.logFile == "" {
		logging.SetupWriter(a.env.Stderr, logging.ParseLevel(level))
	} else {
		closeLog, err := logging.Setup(a.logFile, logging.ParseLevel(level))
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.closeLog = closeLog
	}

	slog.Debug("config loaded", "path", path, "timezone", cfg.Timezone, "output_dir", cfg.OutputDir)
	return nil
}

// Execute runs the command tree against the real process environment.
func Execute(ctx context.Context) error {
	return NewRootCommand(DefaultEnv()).ExecuteContext(ctx)
}
