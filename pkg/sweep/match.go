package sweep

import (
	"sort"

	"github.com/sdejongh/stemsweep/pkg/models"
)

// Candidates returns every source file whose stem key is present in dest.
// Files sharing a key stay together in their indexed order; groups are ordered by key.
func Candidates(source, dest models.DirectoryIndex) []models.FileEntry {
	keys := make([]models.StemKey, 0, len(source))
	for key := range source {
		if dest.Has(key) {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var candidates []models.FileEntry
	for _, key := range keys {
		candidates = append(candidates, source[key]...)
	}
	return candidates
}
