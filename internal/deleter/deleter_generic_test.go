//go:build !windows

package deleter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yourusername/junction-manager/internal/testutil"
)

func TestDeleteFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "victim.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	result, err := Delete(path)
	if result != DeleteSuccess {
		t.Fatalf("Delete = %v, err %v, want success", result, err)
	}
	if _, statErr := os.Lstat(path); !os.IsNotExist(statErr) {
		t.Errorf("file still present after delete: %v", statErr)
	}
}

func TestDeleteMissingPathIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never_existed")
	for i := 0; i < 2; i++ {
		result, err := Delete(path)
		if result != DeleteDoesNotExist {
			t.Fatalf("Delete attempt %d = %v, err %v, want does-not-exist", i+1, result, err)
		}
		if err != nil {
			t.Errorf("does-not-exist carried a diagnostic: %v", err)
		}
	}
}

func TestDeleteReadOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readonly.txt")
	testutil.MakeReadOnlyFile(t, path)

	result, err := Delete(path)
	if result != DeleteSuccess {
		t.Fatalf("Delete(read-only file) = %v, err %v, want success", result, err)
	}
	if _, statErr := os.Lstat(path); !os.IsNotExist(statErr) {
		t.Errorf("read-only file still present after delete: %v", statErr)
	}
}

func TestDeleteEmptyDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	result, err := Delete(path)
	if result != DeleteSuccess {
		t.Fatalf("Delete(empty dir) = %v, err %v, want success", result, err)
	}
}

func TestDeleteNonEmptyDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "full")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	testutil.PopulateDirectory(t, path, 3)

	result, err := Delete(path)
	if result != DeleteDirectoryNotEmpty {
		t.Fatalf("Delete(non-empty dir) = %v, err %v, want directory-not-empty", result, err)
	}
	// The directory and its children survive the refused deletion.
	entries, readErr := os.ReadDir(path)
	if readErr != nil || len(entries) != 3 {
		t.Errorf("directory contents changed: %d entries, err %v", len(entries), readErr)
	}
}

func TestDeleteRejectsRelativePath(t *testing.T) {
	result, err := Delete("relative/path")
	if result != DeleteError {
		t.Errorf("Delete(relative) = %v, want error", result)
	}
	if err == nil {
		t.Error("expected a validation diagnostic")
	}
}

func TestCheckDirectoryStatus(t *testing.T) {
	tmpDir := t.TempDir()

	if got := CheckDirectoryStatus(filepath.Join(tmpDir, "missing")); got != StatusDoesNotExist {
		t.Errorf("CheckDirectoryStatus(missing) = %v, want does-not-exist", got)
	}

	empty := filepath.Join(tmpDir, "empty")
	if err := os.Mkdir(empty, 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if got := CheckDirectoryStatus(empty); got != StatusEmpty {
		t.Errorf("CheckDirectoryStatus(empty) = %v, want empty", got)
	}

	full := filepath.Join(tmpDir, "full")
	if err := os.Mkdir(full, 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	testutil.PopulateDirectory(t, full, 1)
	if got := CheckDirectoryStatus(full); got != StatusNotEmpty {
		t.Errorf("CheckDirectoryStatus(non-empty) = %v, want not-empty", got)
	}
}
