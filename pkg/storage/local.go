package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Local is a filesystem-based storage backend bound to one directory
type Local struct {
	root string
}

// NewLocal creates a local backend for root.
// The directory is not checked here; ReadDir reports a missing or unreadable root.
func NewLocal(root string) (*Local, error) {
	if root == "" {
		return nil, fmt.Errorf("directory path is empty")
	}
	return &Local{root: root}, nil
}

// Root returns the directory path as given to NewLocal
func (l *Local) Root() string {
	return l.root
}

// ReadDir lists the names of the root's direct children
func (l *Local) ReadDir(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// Stat returns metadata for a direct child of the root
func (l *Local) Stat(ctx context.Context, name string) (*FileInfo, error) {
	fullPath := filepath.Join(l.root, name)

	// os.Stat follows symlinks so a link to a regular file counts as one
	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, err
	}

	return &FileInfo{
		Path:      fullPath,
		Name:      name,
		Size:      info.Size(),
		ModTime:   info.ModTime(),
		IsDir:     info.IsDir(),
		IsRegular: info.Mode().IsRegular(),
	}, nil
}

// Remove deletes a single file
func (l *Local) Remove(ctx context.Context, path string) error {
	return os.Remove(path)
}

// Close releases resources (no-op for local filesystem)
func (l *Local) Close() error {
	return nil
}
