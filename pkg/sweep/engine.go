package sweep

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sdejongh/stemsweep/pkg/index"
	"github.com/sdejongh/stemsweep/pkg/logging"
	"github.com/sdejongh/stemsweep/pkg/models"
	"github.com/sdejongh/stemsweep/pkg/output"
	"github.com/sdejongh/stemsweep/pkg/storage"
)

// Engine reconciles a source directory against a destination directory
type Engine struct {
	dest      storage.Backend
	source    storage.Backend
	formatter output.Formatter
	logger    logging.Logger
	operation *models.SweepOperation
}

// NewEngine creates a new sweep engine. formatter and logger may be nil.
func NewEngine(
	dest, source storage.Backend,
	formatter output.Formatter,
	logger logging.Logger,
	operation *models.SweepOperation,
) *Engine {
	if logger == nil {
		logger = logging.Discard
	}
	return &Engine{
		dest:      dest,
		source:    source,
		formatter: formatter,
		logger:    logger,
		operation: operation,
	}
}

// Run scans both directories, selects the candidates and reports or deletes them.
// A directory that cannot be listed aborts the run before anything is deleted;
// failed deletions are recorded in the report and never returned as an error.
func (e *Engine) Run(ctx context.Context) (*models.SweepReport, error) {
	if err := e.operation.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sweep operation: %w", err)
	}

	report := &models.SweepReport{
		OperationID: e.operation.ID,
		DestPath:    e.dest.Root(),
		SourcePath:  e.source.Root(),
		SourceKind:  e.operation.Kind(),
		DryRun:      e.operation.DryRun,
		CreatedAt:   e.operation.CreatedAt,
		StartTime:   time.Now(),
	}

	logger := e.logger.WithFields(logging.Fields{"operation_id": e.operation.ID})
	logger.Info(ctx, "Starting sweep", logging.Fields{
		"dest":        report.DestPath,
		"source":      report.SourcePath,
		"dry_run":     report.DryRun,
		"max_workers": e.operation.MaxWorkers,
	})

	destIdx, sourceIdx, err := e.scan(ctx, logger, report)
	if err != nil {
		report.Status = models.StatusFailed
		logger.Error(ctx, "Scan failed, nothing deleted", err, nil)
		return report, err
	}

	report.Candidates = Candidates(sourceIdx, destIdx)
	logger.Info(ctx, "Candidates selected", logging.Fields{"candidates": len(report.Candidates)})

	if e.formatter != nil {
		e.formatter.Start(len(report.Candidates), report.DryRun)
	}

	if !report.DryRun {
		deleter := NewDeleter(e.source, e.operation.MaxWorkers, e.formatter, logger)
		report.Failures = deleter.Delete(ctx, report.Candidates)
	}

	report.Finalize()

	if e.formatter != nil {
		if err := e.formatter.Complete(report); err != nil {
			logger.Warn(ctx, "Failed to render report", logging.Fields{"error": err.Error()})
		}
	}

	logger.Info(ctx, "Sweep completed", logging.Fields{
		"duration":   report.Duration.String(),
		"status":     report.Status,
		"candidates": len(report.Candidates),
		"deleted":    report.Deleted(),
		"failed":     len(report.Failures),
	})

	return report, nil
}

// scan indexes both directories concurrently and waits for both.
// The first listing error cancels the other scan and is returned.
func (e *Engine) scan(ctx context.Context, logger logging.Logger, report *models.SweepReport) (dest, source models.DirectoryIndex, err error) {
	indexer := index.NewIndexer(e.operation.MaxWorkers, logger)

	var destStats, sourceStats index.ScanStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var buildErr error
		dest, destStats, buildErr = indexer.Build(gctx, e.dest)
		return buildErr
	})
	g.Go(func() error {
		var buildErr error
		source, sourceStats, buildErr = indexer.Build(gctx, e.source)
		return buildErr
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	report.Stats = models.Statistics{
		DestEntriesScanned:   destStats.Entries,
		DestFilesIndexed:     destStats.Indexed,
		SourceEntriesScanned: sourceStats.Entries,
		SourceFilesIndexed:   sourceStats.Indexed,
		EntriesSkipped:       destStats.Skipped + sourceStats.Skipped,
	}
	return dest, source, nil
}
