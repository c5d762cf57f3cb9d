package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// PopulateDirectory fills dir with n small files named child_0.txt ...
// child_{n-1}.txt. Used by deletion tests that need a non-empty directory.
func PopulateDirectory(t *testing.T, dir string, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		name := filepath.Join(dir, fmt.Sprintf("child_%d.txt", i))
		if err := os.WriteFile(name, []byte("fixture"), 0o644); err != nil {
			t.Fatalf("Failed to create fixture file %s: %v", name, err)
		}
	}
}

// MakeReadOnlyFile creates a file with the read-only attribute (mode) set
// and registers a cleanup that restores writability so t.TempDir removal
// does not trip over it on Windows.
func MakeReadOnlyFile(t *testing.T, path string) {
	t.Helper()

	if err := os.WriteFile(path, []byte("read-only fixture"), 0o644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	if err := os.Chmod(path, 0o444); err != nil {
		t.Fatalf("Failed to mark %s read-only: %v", path, err)
	}
	t.Cleanup(func() {
		// The file is usually gone by now; only the failure path needs this.
		_ = os.Chmod(path, 0o644)
	})
}
