package models

import (
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// StemKey is the lowercased filename stem used to pair files across directories
type StemKey string

// FileEntry represents a regular file observed while scanning a directory
type FileEntry struct {
	// Path is the file path as found under the scanned directory
	Path string

	// Name is the base name of the file
	Name string

	// Key is the lowercased stem of Name
	Key StemKey

	// Size in bytes at scan time
	Size int64

	// ModTime is the last modification time at scan time
	ModTime time.Time
}

// DirectoryIndex maps a stem key to every file of one directory sharing it.
// A key may hold several files (same stem, different extensions).
type DirectoryIndex map[StemKey][]FileEntry

// Has reports whether the index holds at least one file for key
func (idx DirectoryIndex) Has(key StemKey) bool {
	_, ok := idx[key]
	return ok
}

// Files returns the number of files held by the index
func (idx DirectoryIndex) Files() int {
	n := 0
	for _, entries := range idx {
		n += len(entries)
	}
	return n
}

// Stem returns the file name without its final extension.
// A leading dot does not start an extension, so ".profile" stays ".profile".
func Stem(name string) string {
	if name == "" || name == "." || name == ".." {
		return ""
	}
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return name
	}
	return name[:dot]
}

// KeyFor returns the stem key for a file name.
// ok is false when the name has no usable stem (empty or not valid UTF-8).
func KeyFor(name string) (StemKey, bool) {
	name = filepath.Base(name)
	if !utf8.ValidString(name) {
		return "", false
	}
	stem := Stem(name)
	if stem == "" {
		return "", false
	}
	return StemKey(strings.ToLower(stem)), true
}
