// Package winpath classifies and rewrites native Windows path strings.
// It is the gate in front of every filesystem operation in this project:
// operations only accept absolute, normalized Windows paths, and winpath
// decides what qualifies.
//
// A path is absolute and normalized when it has a drive-specifier prefix
// (C:\ style, optionally behind the extended-length \\?\ marker), uses only
// backslash separators, and contains no "." or ".." segments. The null
// device alias ("NUL") is always considered valid. Relative paths,
// POSIX-style paths, and traversal-bearing paths are rejected; callers must
// resolve them before coming here.
//
// All functions in this file are pure string manipulation and build on
// every platform; the canonical-path resolver, which asks the OS for the
// long form of a path, lives in resolve_windows.go.
package winpath

import "strings"

// LongPathPrefix is the extended-length path marker. Paths carrying it are
// passed to the Win32 API verbatim and are exempt from the MAX_PATH limit.
// Not to be confused with the kernel-side `\??\` object-namespace prefix
// used inside reparse point buffers.
const LongPathPrefix = `\\?\`

// IsDevNull reports whether the path is the null device alias.
// The alias is reserved in every directory, so no further validation or
// normalization applies to it.
func IsDevNull(path string) bool {
	return strings.EqualFold(path, "NUL")
}

// HasLongPathPrefix reports whether the path carries the \\?\ marker.
func HasLongPathPrefix(path string) bool {
	return strings.HasPrefix(path, LongPathPrefix)
}

// AddLongPathPrefixIfMissing prepends the \\?\ marker unless the path is
// empty, the null device alias, or already carries it.
func AddLongPathPrefixIfMissing(path string) string {
	if path == "" || IsDevNull(path) || HasLongPathPrefix(path) {
		return path
	}
	return LongPathPrefix + path
}

// RemoveLongPathPrefixIfPresent is the inverse of
// AddLongPathPrefixIfMissing.
func RemoveLongPathPrefixIfPresent(path string) string {
	if HasLongPathPrefix(path) {
		return path[len(LongPathPrefix):]
	}
	return path
}

// hasDriveSpecifierPrefix reports whether the path starts with a drive
// letter, a colon, and a backslash, optionally behind the \\?\ marker.
func hasDriveSpecifierPrefix(path string) bool {
	if HasLongPathPrefix(path) {
		return len(path) >= 7 && isDriveLetter(path[4]) && path[5] == ':' && path[6] == '\\'
	}
	return len(path) >= 3 && isDriveLetter(path[0]) && path[1] == ':' && path[2] == '\\'
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// IsAbsoluteNormalized reports whether the path is acceptable to the
// junction and deletion operations: the null device alias, or an absolute
// drive-letter path with no forward slashes and no "." or ".." segments.
func IsAbsoluteNormalized(path string) bool {
	if path == "" {
		return false
	}
	if IsDevNull(path) {
		return true
	}
	if strings.ContainsRune(path, '/') {
		return false
	}
	return hasDriveSpecifierPrefix(path) &&
		!strings.HasPrefix(path, `.\`) &&
		!strings.Contains(path, `\.\`) &&
		!strings.HasSuffix(path, `\.`) &&
		!strings.HasPrefix(path, `..\`) &&
		!strings.Contains(path, `\..\`) &&
		!strings.HasSuffix(path, `\..`)
}
