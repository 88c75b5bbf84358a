package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GlobalFlags holds the persistent flags shared by every command
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
}

var globalFlags GlobalFlags

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&globalFlags.ConfigFile, "config", "", "config file (default is $HOME/.config/stemsweep/config.yaml)")
	flags.BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "log scan and deletion details to stderr")
	flags.BoolVarP(&globalFlags.Quiet, "quiet", "q", false, "disable the progress bar")
}

// SweepFlags holds the flags of one sweep invocation. Each command owns its own copy.
type SweepFlags struct {
	Dest         string
	Source       string
	DryRun       bool
	SourceKind   string
	Parallel     int
	Output       string
	Report       string
	ReportFormat string

	LogFile   string
	LogFormat string
	LogLevel  string
}

// Legacy names kept for scripts written against the first release,
// which only knew AVIF destinations and PNG sources.
const (
	legacyDestFlag   = "avif-destination"
	legacySourceFlag = "png-source"
)

// bindSweepFlags registers the sweep flags on fs. The legacy names write
// to the same fields as --dest and --source.
func bindSweepFlags(fs *pflag.FlagSet, f *SweepFlags) {
	fs.StringVarP(&f.Dest, "dest", "d", "", "destination directory holding converted files (required)")
	fs.StringVarP(&f.Source, "source", "s", "", "source directory holding files to delete (required)")
	fs.StringVarP(&f.Dest, legacyDestFlag, "a", "", "alias of --dest")
	fs.StringVarP(&f.Source, legacySourceFlag, "p", "", "alias of --source")
	fs.MarkHidden(legacyDestFlag)
	fs.MarkHidden(legacySourceFlag)

	fs.StringVar(&f.SourceKind, "source-kind", "", "label for source files in the dry-run summary (default from config: png)")
	fs.IntVarP(&f.Parallel, "parallel", "j", 0, "number of parallel workers (default from config: 8)")
	fs.StringVarP(&f.Output, "output", "o", "", "output format: human, json")
	fs.StringVar(&f.Report, "report", "", "write the candidates and failures to a file")
	fs.StringVar(&f.ReportFormat, "report-format", "human", "report file format: human, json")

	fs.StringVar(&f.LogFile, "log-file", "", "write logs to file (enables logging)")
	fs.StringVar(&f.LogFormat, "log-format", "", "log format: text, json")
	fs.StringVar(&f.LogLevel, "log-level", "", "log level: debug, info, warn, error")
}

// markDirFlagsExclusive forbids giving a directory under both its names
func markDirFlagsExclusive(cmd *cobra.Command) {
	cmd.MarkFlagsMutuallyExclusive("dest", legacyDestFlag)
	cmd.MarkFlagsMutuallyExclusive("source", legacySourceFlag)
}

// markDirFlagsRequired requires each directory under one of its names
func markDirFlagsRequired(cmd *cobra.Command) {
	cmd.MarkFlagsOneRequired("dest", legacyDestFlag)
	cmd.MarkFlagsOneRequired("source", legacySourceFlag)
}

// dirFlagsGiven reports whether any directory flag was set on the command line
func dirFlagsGiven(cmd *cobra.Command) bool {
	for _, name := range []string{"dest", "source", legacyDestFlag, legacySourceFlag} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}
