//go:build !windows

package winpath

import "github.com/yourusername/junction-manager/internal/diag"

// ResolveCanonicalPath requires the Windows long-path API; other platforms
// report an unsupported-platform diagnostic.
func ResolveCanonicalPath(path string) (string, error) {
	return "", diag.Text("ResolveCanonicalPath", path,
		"canonical path resolution requires Windows")
}
