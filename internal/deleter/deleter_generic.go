//go:build !windows

package deleter

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/yourusername/junction-manager/internal/diag"
)

// Delete removes the file or directory at path using the default retry
// policy.
func Delete(path string) (DeleteResult, error) {
	return DeleteWithPolicy(path, DefaultRetryPolicy())
}

// DeleteWithPolicy removes the object at path. Other platforms have no
// deleted-but-lingering directory entries, so the retry policy is never
// consulted here; a not-empty directory is terminal on the first attempt.
func DeleteWithPolicy(path string, policy RetryPolicy) (DeleteResult, error) {
	if !filepath.IsAbs(path) {
		return DeleteError, diag.Text("DeletePath", path,
			"expected an absolute path")
	}

	err := os.Remove(path)
	if err == nil {
		return DeleteSuccess, nil
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return DeleteDoesNotExist, nil
	case errors.Is(err, fs.ErrPermission):
		return DeleteAccessDenied, nil
	case errors.Is(err, syscall.ENOTEMPTY), errors.Is(err, syscall.EEXIST):
		return DeleteDirectoryNotEmpty, nil
	}
	return DeleteError, diag.OSError("remove", path, err)
}
