package models

import (
	"time"
)

// DefaultSourceKind labels source files in the dry-run summary
const DefaultSourceKind = "png"

// SweepOperation holds the inputs of one reconciliation run
type SweepOperation struct {
	ID         string
	DestPath   string
	SourcePath string
	DryRun     bool
	SourceKind string // label used in reports, e.g. "png"
	MaxWorkers int
	CreatedAt  time.Time
}

// Validate checks if the operation configuration is valid
func (op *SweepOperation) Validate() error {
	if op.DestPath == "" {
		return &ValidationError{Field: "DestPath", Message: "destination path is required"}
	}
	if op.SourcePath == "" {
		return &ValidationError{Field: "SourcePath", Message: "source path is required"}
	}
	if op.MaxWorkers < 1 {
		return &ValidationError{Field: "MaxWorkers", Message: "max workers must be at least 1"}
	}
	return nil
}

// Kind returns the source kind label, falling back to the default
func (op *SweepOperation) Kind() string {
	if op.SourceKind == "" {
		return DefaultSourceKind
	}
	return op.SourceKind
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
