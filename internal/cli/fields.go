package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tessro/weekly/internal/config"
	"github.com/tessro/weekly/internal/report"
)

func newFieldsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields <owner> <repo> [token]",
		Short: "List the project board fields linked to a repository",
		Long: "List the custom fields of every project board linked to the repository and " +
			"show which of the fields the report reads are present.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFields(cmd, args)
		},
	}
}

func (a *app) runFields(cmd *cobra.Command, args []string) error {
	owner, repo := args[0], args[1]
	if err := config.ValidateTarget(owner, repo); err != nil {
		return err
	}

	client, err := a.newClient(cmd.Context(), tokenArg(args, 2))
	if err != nil {
		return err
	}
	boards, err := client.Boards(cmd.Context(), owner, repo)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(boards) == 0 {
		_, _ = fmt.Fprintf(out, "No project boards linked to %s/%s\n", owner, repo)
		return nil
	}

	for i, b := range boards {
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}
		_, _ = fmt.Fprintf(out, "#%d %s\n", b.Number, b.Title)

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "  FIELD\tTYPE\tUSED")
		for _, f := range b.Fields {
			used := ""
			if report.ParseFieldKind(f.Name) != report.FieldOther {
				used = "yes"
			}
			_, _ = fmt.Fprintf(tw, "  %s\t%s\t%s\n", f.Name, f.DataType, used)
		}
		_ = tw.Flush()

		var missing []string
		for _, k := range report.KnownFields {
			if !b.HasField(k.String()) {
				missing = append(missing, k.String())
			}
		}
		if len(missing) > 0 {
			_, _ = fmt.Fprintf(out, "  missing: %v\n", missing)
		}
	}
	return nil
}
