package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tessro/weekly/internal/config"
	"github.com/tessro/weekly/internal/output"
	"github.com/tessro/weekly/internal/publish"
	"github.com/tessro/weekly/internal/report"
)

type reportOptions struct {
	outputDir string
	timezone  string
	html      bool
	noSummary bool
}

func newReportCommand(a *app) *cobra.Command {
	opts := &reportOptions{}
	cmd := &cobra.Command{
		Use:   "report <owner> <repo> <author> [token]",
		Short: "Write this week's status report",
		Long: "Fetch the repository's most recent issues, keep the ones still in flight or " +
			"finished during the last eight days, and write <output-dir>/<YYYY-MM-DD>.md.",
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReport(cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "directory for report files (default from config, \"output\")")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "", "time zone that defines today (default from config, Asia/Dhaka)")
	cmd.Flags().BoolVar(&opts.html, "html", false, "also write an HTML rendering of the report")
	cmd.Flags().BoolVar(&opts.noSummary, "no-summary", false, "do not print the terminal summary")
	return cmd
}

func (a *app) runReport(cmd *cobra.Command, opts *reportOptions, args []string) error {
	owner, repo, author := args[0], args[1], args[2]
	if err := config.ValidateTarget(owner, repo); err != nil {
		return err
	}
	if err := config.ValidateAuthor(author); err != nil {
		return err
	}

	loc, err := a.location(opts.timezone)
	if err != nil {
		return err
	}

	res, err := a.buildReport(cmd.Context(), cmd, owner, repo, author, tokenArg(args, 3), loc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, len(res.Extracted))

	dir := opts.outputDir
	if dir == "" {
		dir = a.cfg.OutputDir
	}
	w := output.NewWriter(a.env.Fs, dir)
	path, err := w.Write(res.FileName(), res.Markdown)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	slog.Info("report written", "path", path, "kept", len(res.Kept))

	htmlPath := ""
	if opts.html || a.cfg.Report.HTML {
		htmlPath, err = a.writeHTML(w, res)
		if err != nil {
			return err
		}
		slog.Info("html report written", "path", htmlPath)
	}

	if !opts.noSummary {
		printSummary(out, res)
	}
	_, _ = fmt.Fprintf(out, "Report written to %s\n", path)
	if htmlPath != "" {
		_, _ = fmt.Fprintf(out, "HTML written to %s\n", htmlPath)
	}
	return nil
}

// buildReport fetches the issues and runs the pipeline for today in loc.
func (a *app) buildReport(ctx context.Context, cmd *cobra.Command, owner, repo, author, token string, loc *time.Location) (*report.Result, error) {
	data, err := a.fetchIssues(ctx, cmd.ErrOrStderr(), owner, repo, token)
	if err != nil {
		return nil, err
	}
	res, err := report.Build(data, report.Params{
		Author:   author,
		Now:      a.env.Now(),
		Location: loc,
	})
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}
	return res, nil
}

// location returns the flag's time zone if set, otherwise the configured one.
func (a *app) location(override string) (*time.Location, error) {
	if override == "" {
		return a.cfg.Location()
	}
	if err := config.ValidateTimezone(override); err != nil {
		return nil, err
	}
	return time.LoadLocation(override)
}

// writeHTML renders the report as a standalone page next to the Markdown file.
func (a *app) writeHTML(w *output.Writer, res *report.Result) (string, error) {
	gen, err := publish.NewGenerator(a.env.Fs, w.Dir(), w.Dir(), "")
	if err != nil {
		return "", err
	}
	name := res.FileName()
	page, err := gen.RenderPage(publish.ExtractTitle(res.Markdown, name), res.Markdown)
	if err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	path, err := w.Write(strings.TrimSuffix(name, ".md")+".html", page)
	if err != nil {
		return "", fmt.Errorf("write html: %w", err)
	}
	return path, nil
}
