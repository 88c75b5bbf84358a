package storage

import (
	"context"
	"time"
)

// FileInfo represents metadata about a directory entry
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
	IsDir   bool
	// IsRegular is true for regular files, including symlinks that resolve to one
	IsRegular bool
}

// Backend defines the flat-directory operations a sweep needs.
// Only direct children of the root are ever listed.
type Backend interface {
	// Root returns the directory this backend is bound to
	Root() string

	// ReadDir returns the names of the direct children of the root.
	// An error means the listing itself could not be performed.
	ReadDir(ctx context.Context) ([]string, error)

	// Stat returns metadata for a direct child, following symlinks
	Stat(ctx context.Context, name string) (*FileInfo, error)

	// Remove deletes a single file. A missing file is an error.
	Remove(ctx context.Context, path string) error

	// Close releases any resources held by the backend
	Close() error
}
