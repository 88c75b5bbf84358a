package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sdejongh/stemsweep/internal/platform"
	"github.com/sdejongh/stemsweep/pkg/config"
	"github.com/sdejongh/stemsweep/pkg/models"
)

// validateSweepFlags validates the sweep command flags.
// Existence of the directories is left to the scan so that it fails before any deletion.
func validateSweepFlags(f *SweepFlags) error {
	if err := platform.ValidatePath(f.Dest); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	if err := platform.ValidatePath(f.Source); err != nil {
		return fmt.Errorf("source: %w", err)
	}

	same, err := platform.SameDirectory(f.Dest, f.Source)
	if err != nil {
		return err
	}
	if same {
		return fmt.Errorf("source and destination cannot be the same directory: %s", f.Source)
	}

	if f.Parallel < 0 {
		return fmt.Errorf("invalid parallel workers: %d (must be at least 1)", f.Parallel)
	}

	validOutputs := map[string]bool{"": true, "human": true, "json": true}
	if !validOutputs[f.Output] {
		return fmt.Errorf("invalid output format: %s (valid: human, json)", f.Output)
	}

	validReportFormats := map[string]bool{"human": true, "json": true}
	if !validReportFormats[f.ReportFormat] {
		return fmt.Errorf("invalid report format: %s (valid: human, json)", f.ReportFormat)
	}

	return nil
}

// loadConfig loads the --config file, or the default one when present
func loadConfig() (*config.Config, error) {
	return config.Load(globalFlags.ConfigFile)
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cfg *config.Config, f *SweepFlags) {
	if f.SourceKind != "" {
		cfg.Sweep.SourceKind = f.SourceKind
	}

	if f.Parallel > 0 {
		cfg.Performance.MaxWorkers = f.Parallel
	} else if cfg.Performance.MaxWorkers == 0 {
		cfg.Performance.MaxWorkers = 8
	}

	if f.Output != "" {
		cfg.Output.Format = f.Output
	}

	if f.LogFile != "" {
		cfg.Logging.File = f.LogFile
	}
	if f.LogFormat != "" {
		cfg.Logging.Format = f.LogFormat
	}
	if f.LogLevel != "" {
		cfg.Logging.Level = f.LogLevel
	}

	if globalFlags.Quiet {
		cfg.Output.Quiet = true
	}
}

// createSweepOperation creates a sweep operation from configuration
func createSweepOperation(cfg *config.Config, f *SweepFlags) (*models.SweepOperation, error) {
	operation := &models.SweepOperation{
		ID:         uuid.New().String(),
		DestPath:   platform.NormalizePath(f.Dest),
		SourcePath: platform.NormalizePath(f.Source),
		DryRun:     f.DryRun,
		SourceKind: cfg.Sweep.SourceKind,
		MaxWorkers: cfg.Performance.MaxWorkers,
		CreatedAt:  time.Now(),
	}

	if err := operation.Validate(); err != nil {
		return nil, err
	}

	return operation, nil
}
