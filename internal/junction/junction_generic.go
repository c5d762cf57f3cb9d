//go:build !windows

package junction

import "github.com/yourusername/junction-manager/internal/diag"

// Directory junctions are a Windows filesystem feature. The generic build
// exists so that the CLI and the portable packages compile and test on
// other platforms; every operation reports an unsupported-platform
// diagnostic without touching the filesystem.

// Create is not supported off Windows.
func Create(name, target string) (CreateResult, error) {
	return CreateError, diag.Text("CreateJunction", name,
		"directory junctions require Windows")
}

// Read is not supported off Windows.
func Read(path string) (string, ReadResult, error) {
	return "", ReadError, diag.Text("ReadJunction", path,
		"directory junctions require Windows")
}

// IsJunction is not supported off Windows.
func IsJunction(path string) (CheckResult, error) {
	return CheckError, diag.Text("IsJunction", path,
		"directory junctions require Windows")
}
