//go:build windows

package junction

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/windows"

	"github.com/yourusername/junction-manager/internal/diag"
	"github.com/yourusername/junction-manager/internal/reparse"
	"github.com/yourusername/junction-manager/internal/winpath"
)

// Open every handle with reparse-point semantics (operate on the junction
// itself, never on what it points at) and backup semantics (required to
// open directories at all).
const openFlags = windows.FILE_FLAG_OPEN_REPARSE_POINT | windows.FILE_FLAG_BACKUP_SEMANTICS

const shareAll = windows.FILE_SHARE_READ | windows.FILE_SHARE_WRITE | windows.FILE_SHARE_DELETE

// Create makes name a junction pointing at target, or verifies that it
// already is one. The operation is an idempotent best-effort convergence,
// not a transaction: every step re-checks the filesystem state, because
// other processes may create, replace, or delete the path between any two
// system calls.
//
// An existing reparse point is never overwritten; its target is compared
// (case-insensitively) against the requested one instead, so repeating a
// call is safe and a conflicting junction is reported rather than clobbered.
func Create(name, target string) (CreateResult, error) {
	if !winpath.IsAbsoluteNormalized(name) {
		return CreateError, diag.Text("CreateJunction", name,
			"expected an absolute, normalized Windows path for the junction name")
	}
	if !winpath.IsAbsoluteNormalized(target) {
		return CreateError, diag.Text("CreateJunction", target,
			"expected an absolute, normalized Windows path for the junction target")
	}

	// The descriptor stores the target behind the kernel's `\??\` prefix,
	// which replaces the Win32 \\?\ marker's job; strip the marker so it is
	// not embedded twice.
	storedTarget := winpath.RemoveLongPathPrefixIfPresent(target)
	if reparse.TargetLength(storedTarget) > reparse.MaxTargetLength {
		return CreateTargetNameTooLong, diag.Text("CreateJunction", storedTarget,
			"target path is too long")
	}

	osName := winpath.AddLongPathPrefixIfMissing(name)
	name16, err := windows.UTF16PtrFromString(osName)
	if err != nil {
		return CreateError, diag.OSError("UTF16PtrFromString", name, err)
	}

	// Junctions are directories, so create a directory. If this fails we do
	// not care why: the path may already exist, be inaccessible, or be
	// invalid. Either way we fall back to opening whatever is there for
	// metadata reading and checking whether it is the junction we want.
	created := windows.CreateDirectory(name16, nil) == nil

	handle := windows.InvalidHandle
	if created {
		// Write access with read-only sharing, so the descriptor write
		// below cannot race other writers.
		h, err := windows.CreateFile(name16,
			windows.GENERIC_READ|windows.GENERIC_WRITE, windows.FILE_SHARE_READ,
			nil, windows.OPEN_EXISTING, openFlags, 0)
		if err == nil {
			handle = h
		}
	}

	if handle == windows.InvalidHandle {
		// Either we never created the directory, or it changed underneath
		// us before we could open it for writing. Open it without any
		// access and maximum sharing; metadata reads still work that way.
		created = false
		h, err := windows.CreateFile(name16, 0, shareAll,
			nil, windows.OPEN_EXISTING, openFlags, 0)
		if err != nil {
			switch {
			case errors.Is(err, windows.ERROR_SHARING_VIOLATION):
				return CreateAccessDenied, nil
			case errors.Is(err, windows.ERROR_FILE_NOT_FOUND),
				errors.Is(err, windows.ERROR_PATH_NOT_FOUND):
				// The path or one of its parents vanished mid-operation.
				return CreateDisappeared, nil
			}
			return CreateError, diag.OSError("CreateFileW", osName, err)
		}
		handle = h
	}
	defer windows.CloseHandle(handle)

	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(handle, &info); err != nil {
		return CreateError, diag.OSError("GetFileInformationByHandle", osName, err)
	}
	attrs := info.FileAttributes

	if attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0 {
		// Something already installed reparse data here, possibly between
		// our CreateDirectory and the open. Never overwrite; compare.
		created = false
	}

	if created && attrs&windows.FILE_ATTRIBUTE_DIRECTORY == 0 {
		// We created the directory, but by now it is neither a directory
		// nor a reparse point. Report the raw attributes rather than
		// guessing what the other process turned it into.
		return CreateError, diag.Text("GetFileInformationByHandle", osName,
			fmt.Sprintf("unexpected attributes 0x%08x", attrs))
	}

	if !created {
		if attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT == 0 {
			return CreateAlreadyExistsButNotJunction, nil
		}

		// The junction already exists; check whether it points at the
		// requested target.
		actual, err := readTargetByHandle(handle)
		if err != nil {
			if errors.Is(err, reparse.ErrNotMountPoint) {
				// A reparse point with some other tag, e.g. a directory
				// symlink. Not a junction, so not ours to overwrite.
				return CreateAlreadyExistsButNotJunction, nil
			}
			if errors.Is(err, reparse.ErrInvalidDescriptor) {
				return CreateError, diag.Text("ReadJunctionByHandle", osName, err.Error())
			}
			return CreateError, diag.OSError("ReadJunctionByHandle", osName, err)
		}
		if !sameTarget(actual, storedTarget) {
			return CreateAlreadyExistsWithDifferentTarget, nil
		}
		return CreateSuccess, nil
	}

	desc, err := reparse.EncodeMountPoint(storedTarget)
	if err != nil {
		// Unreachable after the length pre-check, but the codec owns the
		// limit; do not second-guess it.
		return CreateTargetNameTooLong, diag.Text("CreateJunction", storedTarget, err.Error())
	}
	var bytesReturned uint32
	if err := windows.DeviceIoControl(handle, windows.FSCTL_SET_REPARSE_POINT,
		&desc[0], uint32(len(desc)), nil, 0, &bytesReturned, nil); err != nil {
		if errors.Is(err, windows.ERROR_DIR_NOT_EMPTY) {
			// The OS refuses to install reparse data on a non-empty
			// directory, meaning somebody populated it under us.
			return CreateAlreadyExistsButNotJunction, nil
		}
		return CreateError, diag.OSError("DeviceIoControl", osName, err)
	}
	return CreateSuccess, nil
}

// Read returns the target of the junction at path without following it.
func Read(path string) (string, ReadResult, error) {
	if !winpath.IsAbsoluteNormalized(path) {
		return "", ReadError, diag.Text("ReadJunction", path,
			"expected an absolute, normalized Windows path")
	}

	osPath := winpath.AddLongPathPrefixIfMissing(path)
	path16, err := windows.UTF16PtrFromString(osPath)
	if err != nil {
		return "", ReadError, diag.OSError("UTF16PtrFromString", path, err)
	}

	handle, err := windows.CreateFile(path16, 0, shareAll,
		nil, windows.OPEN_EXISTING, openFlags, 0)
	if err != nil {
		switch {
		case errors.Is(err, windows.ERROR_SHARING_VIOLATION):
			return "", ReadAccessDenied, nil
		case errors.Is(err, windows.ERROR_FILE_NOT_FOUND),
			errors.Is(err, windows.ERROR_PATH_NOT_FOUND):
			return "", ReadDoesNotExist, nil
		}
		return "", ReadError, diag.OSError("CreateFileW", osPath, err)
	}
	defer windows.CloseHandle(handle)

	target, err := readTargetByHandle(handle)
	if err != nil {
		switch {
		case errors.Is(err, windows.ERROR_NOT_A_REPARSE_POINT),
			errors.Is(err, reparse.ErrNotMountPoint):
			return "", ReadNotAJunction, nil
		case errors.Is(err, reparse.ErrInvalidDescriptor):
			return "", ReadError, diag.Text("ReadJunctionByHandle", osPath, err.Error())
		}
		return "", ReadError, diag.OSError("ReadJunctionByHandle", osPath, err)
	}
	return target, ReadSuccess, nil
}

// IsJunction reports whether path is a directory junction (or directory
// symlink: both present as a directory carrying reparse data).
func IsJunction(path string) (CheckResult, error) {
	if !winpath.IsAbsoluteNormalized(path) {
		return CheckError, diag.Text("IsJunction", path,
			"expected an absolute, normalized Windows path")
	}

	path16, err := windows.UTF16PtrFromString(winpath.AddLongPathPrefixIfMissing(path))
	if err != nil {
		return CheckError, diag.OSError("UTF16PtrFromString", path, err)
	}
	attrs, err := windows.GetFileAttributes(path16)
	if err != nil {
		return CheckError, diag.OSError("GetFileAttributesW", path, err)
	}
	if attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0 &&
		attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0 {
		return CheckIsJunction, nil
	}
	return CheckNotJunction, nil
}

// readTargetByHandle fetches and decodes the reparse descriptor behind an
// open handle. OS errors are returned raw so callers can map
// ERROR_NOT_A_REPARSE_POINT themselves.
func readTargetByHandle(handle windows.Handle) (string, error) {
	buf := make([]byte, reparse.MaximumBufferSize)
	var bytesReturned uint32
	if err := windows.DeviceIoControl(handle, windows.FSCTL_GET_REPARSE_POINT,
		nil, 0, &buf[0], uint32(len(buf)), &bytesReturned, nil); err != nil {
		return "", err
	}
	return reparse.DecodeMountPoint(buf[:bytesReturned])
}

// sameTarget compares junction targets the way the filesystem does:
// case-insensitively, but with lengths compared exactly.
func sameTarget(a, b string) bool {
	return len(a) == len(b) && strings.EqualFold(a, b)
}
