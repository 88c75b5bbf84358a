package index

import "fmt"

// DirectoryReadError reports that a directory listing could not be performed.
// It is fatal for the scan; per-entry problems never produce it.
type DirectoryReadError struct {
	Dir string
	Err error
}

func (e *DirectoryReadError) Error() string {
	return fmt.Sprintf("failed to read directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryReadError) Unwrap() error {
	return e.Err
}
