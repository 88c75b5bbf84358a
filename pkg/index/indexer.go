package index

import (
	"context"
	"sort"
	"sync"

	"github.com/sdejongh/stemsweep/pkg/logging"
	"github.com/sdejongh/stemsweep/pkg/models"
	"github.com/sdejongh/stemsweep/pkg/storage"
)

// ScanStats summarizes one directory scan
type ScanStats struct {
	Dir     string
	Entries int // direct children listed
	Indexed int // regular files with a stem
	Skipped int // everything else
}

// Indexer builds a DirectoryIndex from the direct children of a directory
type Indexer struct {
	maxWorkers int
	logger     logging.Logger
}

// NewIndexer creates an indexer inspecting entries with up to maxWorkers goroutines
func NewIndexer(maxWorkers int, logger logging.Logger) *Indexer {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if logger == nil {
		logger = logging.Discard
	}
	return &Indexer{maxWorkers: maxWorkers, logger: logger}
}

// Build lists the backend's root and indexes every regular file by its stem key.
// Only a failed listing is an error, reported as *DirectoryReadError.
func (ix *Indexer) Build(ctx context.Context, backend storage.Backend) (models.DirectoryIndex, ScanStats, error) {
	stats := ScanStats{Dir: backend.Root()}

	names, err := backend.ReadDir(ctx)
	if err != nil {
		return nil, stats, &DirectoryReadError{Dir: backend.Root(), Err: err}
	}
	stats.Entries = len(names)

	entries := ix.inspectAll(ctx, backend, names)
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	// Fold single-threaded once every worker is done
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	idx := make(models.DirectoryIndex)
	for _, e := range entries {
		idx[e.Key] = append(idx[e.Key], e)
	}

	stats.Indexed = len(entries)
	stats.Skipped = stats.Entries - stats.Indexed

	ix.logger.Debug(ctx, "Directory indexed", logging.Fields{
		"dir":     stats.Dir,
		"entries": stats.Entries,
		"indexed": stats.Indexed,
		"skipped": stats.Skipped,
		"keys":    len(idx),
	})

	return idx, stats, nil
}

// inspectAll fans names out to the worker pool and gathers the entries that qualify
func (ix *Indexer) inspectAll(ctx context.Context, backend storage.Backend, names []string) []models.FileEntry {
	if len(names) == 0 {
		return nil
	}

	workers := ix.maxWorkers
	if workers > len(names) {
		workers = len(names)
	}

	queue := make(chan string, len(names))
	for _, name := range names {
		queue <- name
	}
	close(queue)

	results := make(chan models.FileEntry, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range queue {
				if ctx.Err() != nil {
					return
				}
				if entry, ok := ix.inspect(ctx, backend, name); ok {
					results <- entry
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	entries := make([]models.FileEntry, 0, len(names))
	for entry := range results {
		entries = append(entries, entry)
	}
	return entries
}

// inspect returns the entry for name, or false when it is not an indexable file
func (ix *Indexer) inspect(ctx context.Context, backend storage.Backend, name string) (models.FileEntry, bool) {
	key, ok := models.KeyFor(name)
	if !ok {
		ix.logger.Debug(ctx, "Skipping entry without stem", logging.Fields{"dir": backend.Root(), "name": name})
		return models.FileEntry{}, false
	}

	info, err := backend.Stat(ctx, name)
	if err != nil {
		ix.logger.Debug(ctx, "Skipping entry that cannot be inspected", logging.Fields{"dir": backend.Root(), "name": name, "error": err.Error()})
		return models.FileEntry{}, false
	}
	if !info.IsRegular {
		kind := "special file"
		if info.IsDir {
			kind = "directory"
		}
		ix.logger.Debug(ctx, "Skipping "+kind, logging.Fields{"dir": backend.Root(), "name": name})
		return models.FileEntry{}, false
	}

	return models.FileEntry{
		Path:    info.Path,
		Name:    name,
		Key:     key,
		Size:    info.Size,
		ModTime: info.ModTime,
	}, true
}
