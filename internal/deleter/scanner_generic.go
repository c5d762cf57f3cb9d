//go:build !windows

package deleter

import "os"

// CheckDirectoryStatus classifies path by its immediate children. Other
// platforms have no marked-for-deletion limbo: entries are either present
// or gone, so the pending-deletion status never occurs here.
func CheckDirectoryStatus(path string) DirectoryStatus {
	entries, err := os.ReadDir(path)
	if err != nil {
		return StatusDoesNotExist
	}
	if len(entries) == 0 {
		return StatusEmpty
	}
	return StatusNotEmpty
}
