package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tessro/weekly/internal/publish"
)

type publishOptions struct {
	source   string
	out      string
	template string
}

func newPublishCommand(a *app) *cobra.Command {
	opts := &publishOptions{}
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Convert written reports to HTML",
		Long:  "Render every Markdown report in the source directory as an HTML page and write an index, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPublish(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.source, "source", "", "directory containing Markdown reports (default output dir)")
	cmd.Flags().StringVar(&opts.out, "out", "", "directory for generated HTML (default source dir)")
	cmd.Flags().StringVar(&opts.template, "template", "", "HTML page template (default built-in)")
	return cmd
}

func (a *app) runPublish(cmd *cobra.Command, opts *publishOptions) error {
	source := opts.source
	if source == "" {
		source = a.cfg.OutputDir
	}
	out := opts.out
	if out == "" {
		out = source
	}

	gen, err := publish.NewGenerator(a.env.Fs, source, out, opts.template)
	if err != nil {
		return fmt.Errorf("initialize publisher: %w", err)
	}
	pages, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("publish reports: %w", err)
	}
	slog.Info("reports published", "source", source, "out", out, "pages", len(pages))

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Published %d reports to %s\n", len(pages), out)
	return nil
}
