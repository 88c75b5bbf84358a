package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdejongh/stemsweep/pkg/logging"
	"github.com/sdejongh/stemsweep/pkg/output"
	"github.com/sdejongh/stemsweep/pkg/storage"
	"github.com/sdejongh/stemsweep/pkg/sweep"
)

// NewSweepCommand creates the sweep command
func NewSweepCommand() *cobra.Command {
	flags := &SweepFlags{}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete source files already converted into the destination",
		Long: `Delete every file of the source directory whose name, without extension
and ignoring case, matches a file of the destination directory.
Only the direct children of both directories are considered.`,
		Example: `  stemsweep sweep --dest ./avif --source ./png --dry-run
  stemsweep sweep -d ./avif -s ./png -j 16`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, flags)
		},
	}

	bindSweepFlags(cmd.Flags(), flags)
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "list the files that would be deleted without deleting them")
	markDirFlagsExclusive(cmd)
	markDirFlagsRequired(cmd)

	return cmd
}

func runSweep(cmd *cobra.Command, flags *SweepFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := validateSweepFlags(flags); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	applyFlagsToConfig(cfg, flags)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	operation, err := createSweepOperation(cfg, flags)
	if err != nil {
		return fmt.Errorf("failed to create sweep operation: %w", err)
	}

	dest, err := storage.NewLocal(operation.DestPath)
	if err != nil {
		return fmt.Errorf("failed to create destination backend: %w", err)
	}
	defer dest.Close()

	source, err := storage.NewLocal(operation.SourcePath)
	if err != nil {
		return fmt.Errorf("failed to create source backend: %w", err)
	}
	defer source.Close()

	formatter := createFormatter(cfg.Output.Format, cfg.ShowProgress(), cmd.OutOrStdout(), cmd.ErrOrStderr())

	logger, err := createLogger(cfg.Logging.File, cfg.Logging.Format, cfg.Logging.Level, globalFlags.Verbose, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	engine := sweep.NewEngine(dest, source, formatter, logger, operation)

	report, err := engine.Run(ctx)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	if flags.Report != "" {
		if err := output.WriteReportFile(report, flags.Report, flags.ReportFormat); err != nil {
			return err
		}
	}

	// Failed deletions are reported by the formatter, not turned into an exit status
	return nil
}

// createFormatter picks the report formatter, adding a progress bar when stderr is a terminal
func createFormatter(format string, progress bool, out, errOut io.Writer) output.Formatter {
	if format == "json" {
		return output.NewJSONFormatter(out)
	}

	var formatter output.Formatter = output.NewHumanFormatter(out, errOut)
	if progress {
		if f, ok := errOut.(*os.File); ok && output.IsTerminal(f) {
			formatter = output.NewProgressFormatter(formatter, f)
		}
	}
	return formatter
}

// createLogger combines the file logger and the verbose console logger
func createLogger(logFile, logFormat, logLevel string, verbose bool, errOut io.Writer) (logging.Logger, error) {
	var loggers []logging.Logger

	if logFile != "" {
		format := logging.FormatText
		if logFormat == "json" {
			format = logging.FormatJSON
		}

		fileLogger, err := logging.NewFileLogger(logging.FileLoggerConfig{
			Path:       logFile,
			Format:     format,
			Level:      logging.ParseLevel(logLevel),
			MaxSize:    10 * 1024 * 1024, // 10 MB
			MaxBackups: 5,
		})
		if err != nil {
			return nil, err
		}
		loggers = append(loggers, fileLogger)
	}

	if verbose {
		loggers = append(loggers, logging.NewConsoleLogger(errOut, logging.DebugLevel))
	}

	return logging.NewMulti(loggers...), nil
}
