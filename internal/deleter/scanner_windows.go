//go:build windows

package deleter

import (
	"golang.org/x/sys/windows"

	"github.com/yourusername/junction-manager/internal/winpath"
)

// CheckDirectoryStatus classifies path by enumerating its immediate
// children. Each child's attributes are queried individually rather than
// trusted from the enumeration snapshot, because entries being torn down by
// another process still show up in their parent:
//
//   - attributes readable: the child is genuinely present, the directory is
//     not empty, stop scanning
//   - access denied: the child is mid-deletion, note it and keep scanning
//   - not found: the child finished disappearing between the enumeration
//     and the query, ignore it
//   - anything else: assume a real child we cannot open, so not empty
func CheckDirectoryStatus(path string) DirectoryStatus {
	pattern, err := windows.UTF16PtrFromString(winpath.AddLongPathPrefixIfMissing(path) + `\*`)
	if err != nil {
		return StatusDoesNotExist
	}

	var metadata windows.Win32finddata
	handle, err := windows.FindFirstFile(pattern, &metadata)
	if err != nil {
		return StatusDoesNotExist
	}
	defer windows.FindClose(handle)

	foundValidChild := false
	foundChildPendingDeletion := false
	for {
		name := windows.UTF16ToString(metadata.FileName[:])
		if name != "." && name != ".." {
			child16, err := windows.UTF16PtrFromString(
				winpath.AddLongPathPrefixIfMissing(path) + `\` + name)
			if err != nil {
				foundValidChild = true
				break
			}
			if _, err := windows.GetFileAttributes(child16); err == nil {
				foundValidChild = true
				break
			} else if err == windows.ERROR_ACCESS_DENIED {
				foundChildPendingDeletion = true
			} else if err != windows.ERROR_FILE_NOT_FOUND {
				foundValidChild = true
				break
			}
		}
		if err := windows.FindNextFile(handle, &metadata); err != nil {
			break
		}
	}

	if foundValidChild {
		return StatusNotEmpty
	}
	if foundChildPendingDeletion {
		return StatusChildrenPendingDeletion
	}
	return StatusEmpty
}
