package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestValidatePath(t *testing.T) {
	if err := ValidatePath(""); err == nil {
		t.Error("ValidatePath(\"\") should fail")
	}
	if err := ValidatePath("   "); err == nil {
		t.Error("ValidatePath of blanks should fail")
	}
	if err := ValidatePath(filepath.Join("data", "png")); err != nil {
		t.Errorf("ValidatePath() error = %v", err)
	}
	if runtime.GOOS == "windows" {
		if err := ValidatePath(`C:\data\png`); err != nil {
			t.Errorf("drive letter should be accepted: %v", err)
		}
		if err := ValidatePath(`C:\data\p?ng`); err == nil {
			t.Error("reserved character should be rejected")
		}
	}
}

func TestNormalizePath(t *testing.T) {
	got := NormalizePath(filepath.Join("a", "b", "..", "c") + string(filepath.Separator))
	if got != filepath.Join("a", "c") {
		t.Errorf("NormalizePath() = %s", got)
	}
}

func TestSameDirectory(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "stemsweep-platform-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	a := filepath.Join(tempDir, "a")
	b := filepath.Join(tempDir, "b")
	os.MkdirAll(a, 0755)
	os.MkdirAll(b, 0755)

	t.Run("Identical", func(t *testing.T) {
		same, err := SameDirectory(a, a+string(filepath.Separator)+".")
		if err != nil || !same {
			t.Errorf("SameDirectory() = %v, %v, want true", same, err)
		}
	})

	t.Run("Different", func(t *testing.T) {
		same, err := SameDirectory(a, b)
		if err != nil || same {
			t.Errorf("SameDirectory() = %v, %v, want false", same, err)
		}
	})

	t.Run("Symlink", func(t *testing.T) {
		link := filepath.Join(tempDir, "link")
		if err := os.Symlink(a, link); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}
		same, err := SameDirectory(a, link)
		if err != nil || !same {
			t.Errorf("SameDirectory() = %v, %v, want true", same, err)
		}
	})

	t.Run("MissingPaths", func(t *testing.T) {
		same, err := SameDirectory(filepath.Join(tempDir, "x"), filepath.Join(tempDir, "y"))
		if err != nil || same {
			t.Errorf("SameDirectory() = %v, %v, want false", same, err)
		}
	})
}
