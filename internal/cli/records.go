package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tessro/weekly/internal/config"
)

type recordsOptions struct {
	kept     bool
	timezone string
}

func newRecordsCommand(a *app) *cobra.Command {
	opts := &recordsOptions{}
	cmd := &cobra.Command{
		Use:   "records <owner> <repo> [token]",
		Short: "Print extracted issue records as YAML",
		Long:  "Fetch the repository's issues and print the records the report is built from. No file is written.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRecords(cmd, opts, args)
		},
	}
	cmd.Flags().BoolVar(&opts.kept, "kept", false, "only print records selected for this week's report, in report order")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "", "time zone that defines today (default from config)")
	return cmd
}

func (a *app) runRecords(cmd *cobra.Command, opts *recordsOptions, args []string) error {
	owner, repo := args[0], args[1]
	if err := config.ValidateTarget(owner, repo); err != nil {
		return err
	}
	loc, err := a.location(opts.timezone)
	if err != nil {
		return err
	}

	res, err := a.buildReport(cmd.Context(), cmd, owner, repo, "", tokenArg(args, 2), loc)
	if err != nil {
		return err
	}

	records := res.Extracted
	if opts.kept {
		records = res.Kept
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return enc.Close()
}
