package config

import (
	"github.com/sdejongh/stemsweep/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Sweep       SweepConfig       `yaml:"sweep"`
	Performance PerformanceConfig `yaml:"performance"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// SweepConfig holds reconciliation settings
type SweepConfig struct {
	SourceKind string `yaml:"source_kind"` // label printed in the dry-run summary
}

// PerformanceConfig holds performance-related settings
type PerformanceConfig struct {
	MaxWorkers int `yaml:"max_workers"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // deletion progress bar on a terminal
	Quiet    bool   `yaml:"quiet"`
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Format string `yaml:"format"` // "json" or "text"
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	File   string `yaml:"file"`   // empty disables file logging
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Sweep: SweepConfig{
			SourceKind: models.DefaultSourceKind,
		},
		Performance: PerformanceConfig{
			MaxWorkers: 8,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
		},
		Logging: LoggingConfig{
			Format: "text",
			Level:  "info",
		},
	}
}

// ShowProgress reports whether the deletion progress bar may be drawn.
// output.quiet wins over output.progress.
func (c *Config) ShowProgress() bool {
	return c.Output.Progress && !c.Output.Quiet
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Performance.MaxWorkers < 1 {
		return &models.ValidationError{
			Field:   "performance.max_workers",
			Message: "must be at least 1",
		}
	}

	if c.Sweep.SourceKind == "" {
		return &models.ValidationError{
			Field:   "sweep.source_kind",
			Message: "must not be empty",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
