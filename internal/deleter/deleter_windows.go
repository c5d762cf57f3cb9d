//go:build windows

package deleter

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/windows"

	"github.com/yourusername/junction-manager/internal/diag"
	"github.com/yourusername/junction-manager/internal/winpath"
)

// Delete removes the file, read-only file, directory, or junction at path
// using the default retry policy.
func Delete(path string) (DeleteResult, error) {
	return DeleteWithPolicy(path, DefaultRetryPolicy())
}

// DeleteWithPolicy removes the object at path. Deleting a junction removes
// the junction itself, never its target's contents, because junctions are
// unlinked like empty directories.
//
// The cheap case comes first: most paths are plain writable files, so try a
// file deletion and only fall back to attribute inspection when it fails
// with access denied, which is what both directories and read-only files
// produce.
func DeleteWithPolicy(path string, policy RetryPolicy) (DeleteResult, error) {
	if !winpath.IsAbsoluteNormalized(path) {
		return DeleteError, diag.Text("DeletePath", path,
			"expected an absolute, normalized Windows path")
	}

	osPath := winpath.AddLongPathPrefixIfMissing(path)
	path16, err := windows.UTF16PtrFromString(osPath)
	if err != nil {
		return DeleteError, diag.OSError("UTF16PtrFromString", path, err)
	}

	err = windows.DeleteFile(path16)
	if err == nil {
		return DeleteSuccess, nil
	}
	switch {
	case errors.Is(err, windows.ERROR_SHARING_VIOLATION):
		return DeleteAccessDenied, nil
	case errors.Is(err, windows.ERROR_FILE_NOT_FOUND),
		errors.Is(err, windows.ERROR_PATH_NOT_FOUND):
		// Already gone, or a parent is gone or no longer a directory.
		return DeleteDoesNotExist, nil
	case !errors.Is(err, windows.ERROR_ACCESS_DENIED):
		return DeleteError, diag.OSError("DeleteFileW", path, err)
	}

	// Access denied: the path is a directory, or a read-only file, or we
	// genuinely lack permission. The attributes tell which.
	attrs, err := windows.GetFileAttributes(path16)
	if err != nil {
		if errors.Is(err, windows.ERROR_FILE_NOT_FOUND) ||
			errors.Is(err, windows.ERROR_PATH_NOT_FOUND) {
			return DeleteDoesNotExist, nil
		}
		return DeleteError, diag.OSError("GetFileAttributesW", path, err)
	}

	switch {
	case attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0:
		return removeDirectory(path, osPath, path16, policy)
	case attrs&windows.FILE_ATTRIBUTE_READONLY != 0:
		return deleteReadOnlyFile(path, path16, attrs)
	default:
		// Neither a directory nor read-only, yet access denied. Attach the
		// raw attributes so the state can be diagnosed after the fact.
		return DeleteError, diag.Text("DeleteFileW", path,
			fmt.Sprintf("access denied with attributes 0x%08x", attrs))
	}
}

// removeDirectory unlinks a directory or junction, retrying while deleted
// children linger in it. A removed child stays visible in its parent until
// the last handle on it closes, so a freshly emptied directory can still
// report not-empty for a few milliseconds. Retry within the policy's bounds
// rather than forever: another process can hold a child handle for an
// arbitrarily long time.
//
// Inspired by
// https://github.com/Alexpux/Cygwin/commit/28fa2a72f810670a0562ea061461552840f5eb70
// Useful link: https://stackoverflow.com/questions/31606978
func removeDirectory(path, osPath string, path16 *uint16, policy RetryPolicy) (DeleteResult, error) {
	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		err := windows.RemoveDirectory(path16)
		if err == nil {
			return DeleteSuccess, nil
		}
		switch {
		case errors.Is(err, windows.ERROR_SHARING_VIOLATION),
			errors.Is(err, windows.ERROR_ACCESS_DENIED):
			return DeleteAccessDenied, nil
		case errors.Is(err, windows.ERROR_FILE_NOT_FOUND),
			errors.Is(err, windows.ERROR_PATH_NOT_FOUND):
			return DeleteDoesNotExist, nil
		case errors.Is(err, windows.ERROR_DIR_NOT_EMPTY):
			switch CheckDirectoryStatus(osPath) {
			case StatusNotEmpty:
				return DeleteDirectoryNotEmpty, nil
			case StatusEmpty:
				// The lingering children vanished between the removal and
				// the scan; retry right away.
				continue
			case StatusChildrenPendingDeletion:
				// Give the system a moment to finish tearing them down.
				time.Sleep(policy.Backoff)
				continue
			default:
				// Not-empty one call ago, unenumerable now. Inconsistent
				// enough to report rather than classify.
				return DeleteError, diag.OSError("RemoveDirectoryW", path, err)
			}
		}
		return DeleteError, diag.OSError("RemoveDirectoryW", path, err)
	}
	// The "deleted" children never went away within the budget.
	return DeleteDirectoryNotEmpty, nil
}

// deleteReadOnlyFile clears the read-only attribute and retries the file
// deletion once. The retry's failures map like the initial deletion's: the
// file can vanish or get opened by another process between the attribute
// write and the delete.
func deleteReadOnlyFile(path string, path16 *uint16, attrs uint32) (DeleteResult, error) {
	if err := windows.SetFileAttributes(path16, attrs&^windows.FILE_ATTRIBUTE_READONLY); err != nil {
		if errors.Is(err, windows.ERROR_FILE_NOT_FOUND) ||
			errors.Is(err, windows.ERROR_PATH_NOT_FOUND) {
			return DeleteDoesNotExist, nil
		}
		return DeleteError, diag.OSError("SetFileAttributesW", path, err)
	}
	if err := windows.DeleteFile(path16); err != nil {
		return mapFileDeleteError(path, err)
	}
	return DeleteSuccess, nil
}

// mapFileDeleteError classifies a failed DeleteFileW call: sharing
// violations mean contention, not-found means the file or a parent is gone,
// anything else gets a diagnostic.
func mapFileDeleteError(path string, err error) (DeleteResult, error) {
	switch {
	case errors.Is(err, windows.ERROR_SHARING_VIOLATION):
		return DeleteAccessDenied, nil
	case errors.Is(err, windows.ERROR_FILE_NOT_FOUND),
		errors.Is(err, windows.ERROR_PATH_NOT_FOUND):
		return DeleteDoesNotExist, nil
	}
	return DeleteError, diag.OSError("DeleteFileW", path, err)
}
