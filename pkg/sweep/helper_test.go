package sweep

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/sdejongh/stemsweep/pkg/models"
	"github.com/sdejongh/stemsweep/pkg/output"
	"github.com/sdejongh/stemsweep/pkg/storage"
)

// testHelper provides a destination/source directory pair for sweep tests
type testHelper struct {
	t         *testing.T
	destDir   string
	sourceDir string
}

func newTestHelper(t *testing.T) *testHelper {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "stemsweep-sweep-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	h := &testHelper{
		t:         t,
		destDir:   filepath.Join(tempDir, "avif"),
		sourceDir: filepath.Join(tempDir, "png"),
	}
	for _, dir := range []string{h.destDir, h.sourceDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
	}
	return h
}

func (h *testHelper) createDestFiles(names ...string) {
	h.t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(h.destDir, name), []byte("avif"), 0644); err != nil {
			h.t.Fatalf("failed to create dest file: %v", err)
		}
	}
}

func (h *testHelper) createSourceFiles(names ...string) {
	h.t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(h.sourceDir, name), []byte("png"), 0644); err != nil {
			h.t.Fatalf("failed to create source file: %v", err)
		}
	}
}

func (h *testHelper) sourceExists(name string) bool {
	_, err := os.Stat(filepath.Join(h.sourceDir, name))
	return err == nil
}

func (h *testHelper) sourcePath(name string) string {
	return filepath.Join(h.sourceDir, name)
}

// run executes a sweep with the human formatter and returns stdout/stderr
func (h *testHelper) run(dryRun bool) (*models.SweepReport, string, string, error) {
	h.t.Helper()
	dest, _ := storage.NewLocal(h.destDir)
	source, _ := storage.NewLocal(h.sourceDir)
	return runEngine(dest, source, dryRun)
}

func runEngine(dest, source storage.Backend, dryRun bool) (*models.SweepReport, string, string, error) {
	var out, errOut bytes.Buffer
	op := &models.SweepOperation{
		ID:         "test-op",
		DryRun:     dryRun,
		SourceKind: "png",
		MaxWorkers: 4,
		DestPath:   dest.Root(),
		SourcePath: source.Root(),
	}
	engine := NewEngine(dest, source, output.NewHumanFormatter(&out, &errOut), nil, op)
	report, err := engine.Run(context.Background())
	return report, out.String(), errOut.String(), err
}

func candidatePaths(report *models.SweepReport) []string {
	paths := make([]string, 0, len(report.Candidates))
	for _, c := range report.Candidates {
		paths = append(paths, c.Path)
	}
	sort.Strings(paths)
	return paths
}

// failingBackend wraps a Local and refuses to remove selected paths
type failingBackend struct {
	*storage.Local
	fail map[string]error

	mu      sync.Mutex
	removed []string
}

func (b *failingBackend) Remove(ctx context.Context, path string) error {
	if err, ok := b.fail[path]; ok {
		return err
	}
	if err := b.Local.Remove(ctx, path); err != nil {
		return err
	}
	b.mu.Lock()
	b.removed = append(b.removed, path)
	b.mu.Unlock()
	return nil
}
