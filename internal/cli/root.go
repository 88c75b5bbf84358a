package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the stemsweep command tree.
// Without a subcommand, the root runs a sweep with the same flags as `sweep`.
func NewRootCommand() *cobra.Command {
	flags := &SweepFlags{}

	rootCmd := &cobra.Command{
		Use:   "stemsweep [--dest DIR --source DIR [--dry-run]]",
		Short: "Remove source images that already have a converted counterpart",
		Long: `stemsweep compares a source directory (e.g. PNG files) with a destination
directory of converted files (e.g. AVIF) and deletes every source file whose
name without extension already exists in the destination.

Running stemsweep with --dest and --source is the same as "stemsweep sweep".`,
		Example: `  stemsweep --dest ./avif --source ./png --dry-run
  stemsweep -a ./avif -p ./png`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !dirFlagsGiven(cmd) {
				return cmd.Help()
			}
			return runSweep(cmd, flags)
		},
	}

	AddGlobalFlags(rootCmd)
	bindSweepFlags(rootCmd.Flags(), flags)
	rootCmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "list the files that would be deleted without deleting them")
	markDirFlagsExclusive(rootCmd)

	rootCmd.AddCommand(NewSweepCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}
