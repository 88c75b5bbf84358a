package cli

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command, a sweep that never deletes
func NewListCommand() *cobra.Command {
	flags := &SweepFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List already converted source files (dry-run)",
		Long: `List the source files whose converted counterpart exists in the destination
directory, without deleting anything. This is equivalent to sweep --dry-run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.DryRun = true
			return runSweep(cmd, flags)
		},
	}

	bindSweepFlags(cmd.Flags(), flags)
	markDirFlagsExclusive(cmd)
	markDirFlagsRequired(cmd)

	return cmd
}
