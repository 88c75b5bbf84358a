package sweep

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sdejongh/stemsweep/pkg/logging"
	"github.com/sdejongh/stemsweep/pkg/models"
	"github.com/sdejongh/stemsweep/pkg/output"
	"github.com/sdejongh/stemsweep/pkg/storage"
)

// Deleter removes candidates on a fixed-size worker pool
type Deleter struct {
	backend    storage.Backend
	maxWorkers int
	formatter  output.Formatter
	logger     logging.Logger
}

// deleteTask is one candidate queued for removal
type deleteTask struct {
	index int
	entry models.FileEntry
}

// deleteResult is sent back to the collector for every failed task
type deleteResult struct {
	index   int
	failure models.DeletionFailure
}

// NewDeleter creates a deleter. formatter and logger may be nil.
func NewDeleter(backend storage.Backend, maxWorkers int, formatter output.Formatter, logger logging.Logger) *Deleter {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if logger == nil {
		logger = logging.Discard
	}
	return &Deleter{
		backend:    backend,
		maxWorkers: maxWorkers,
		formatter:  formatter,
		logger:     logger,
	}
}

// Delete attempts to remove every candidate and returns the failures in candidate order.
// A failure never stops the other deletions. Every queued task runs to completion.
func (d *Deleter) Delete(ctx context.Context, candidates []models.FileEntry) []models.DeletionFailure {
	if len(candidates) == 0 {
		return nil
	}

	workers := d.maxWorkers
	if workers > len(candidates) {
		workers = len(candidates)
	}

	queue := make(chan deleteTask, len(candidates))
	for i, c := range candidates {
		queue <- deleteTask{index: i, entry: c}
	}
	close(queue)

	results := make(chan deleteResult, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go d.runWorker(ctx, i, len(candidates), queue, results, &wg)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var collected []deleteResult
	for r := range results {
		collected = append(collected, r)
	}
	if len(collected) == 0 {
		return nil
	}

	sort.Slice(collected, func(i, j int) bool { return collected[i].index < collected[j].index })
	failures := make([]models.DeletionFailure, len(collected))
	for i, r := range collected {
		failures[i] = r.failure
	}
	return failures
}

func (d *Deleter) runWorker(ctx context.Context, workerID, total int, queue <-chan deleteTask, results chan<- deleteResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range queue {
		err := d.backend.Remove(ctx, task.entry.Path)

		update := output.ProgressUpdate{
			Type:  output.UpdateDeleteComplete,
			Path:  task.entry.Path,
			Index: task.index + 1,
			Total: total,
		}

		if err != nil {
			update.Type = output.UpdateDeleteError
			update.Error = err
			d.logger.Warn(ctx, "Failed to delete file", logging.Fields{
				"path":   task.entry.Path,
				"worker": workerID,
				"error":  err.Error(),
			})
			results <- deleteResult{
				index: task.index,
				failure: models.DeletionFailure{
					Path:      task.entry.Path,
					Err:       err,
					Timestamp: time.Now(),
				},
			}
		} else {
			d.logger.Debug(ctx, "Deleted file", logging.Fields{"path": task.entry.Path, "worker": workerID})
		}

		if d.formatter != nil {
			d.formatter.Progress(update)
		}
	}
}
