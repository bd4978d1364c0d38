package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessro/weekly/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print the version, commit, and build date of weekly.",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "📋 weekly %s (commit: %s, built: %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}
