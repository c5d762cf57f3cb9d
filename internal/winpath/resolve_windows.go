//go:build windows

package winpath

import (
	"golang.org/x/sys/windows"

	"github.com/yourusername/junction-manager/internal/diag"
)

// ResolveCanonicalPath asks the OS for the canonical (long) form of a
// validated absolute path. Short 8.3 names are expanded and on-disk casing
// is restored. The returned path does not carry the \\?\ marker.
func ResolveCanonicalPath(path string) (string, error) {
	if !IsAbsoluteNormalized(path) {
		return "", diag.Text("ResolveCanonicalPath", path, "expected an absolute, normalized Windows path")
	}

	prefixed := AddLongPathPrefixIfMissing(path)
	prefixed16, err := windows.UTF16PtrFromString(prefixed)
	if err != nil {
		return "", diag.OSError("UTF16PtrFromString", path, err)
	}

	// Query-then-allocate: the first call reports the required buffer size
	// including the terminator. The path can grow between the two calls if
	// something renames a component, so loop until the buffer is enough.
	size, err := windows.GetLongPathName(prefixed16, nil, 0)
	if err != nil {
		return "", diag.OSError("GetLongPathNameW", path, err)
	}
	for {
		buf := make([]uint16, size)
		n, err := windows.GetLongPathName(prefixed16, &buf[0], uint32(len(buf)))
		if err != nil {
			return "", diag.OSError("GetLongPathNameW", path, err)
		}
		if n < uint32(len(buf)) {
			return RemoveLongPathPrefixIfPresent(windows.UTF16ToString(buf[:n])), nil
		}
		size = n + 1
	}
}
