package testutil

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// RapidCheck wraps rapid.Check with the configured iteration count.
// This is the recommended way to run property tests in this project.
// rapid v1.2.0 has no per-check option for the iteration count, so it is
// applied through the RAPID_CHECKS environment variable that rapid reads.
func RapidCheck(t *testing.T, fn func(*rapid.T)) {
	t.Helper()

	config := GetTestConfig()
	os.Setenv("RAPID_CHECKS", fmt.Sprintf("%d", config.IterationCount))

	if config.VerboseOutput {
		t.Logf("Property test configured with %d iterations (intensity: %s)",
			config.IterationCount, config.Intensity)
	}

	rapid.Check(t, fn)
}

// DriveLetter returns a generator for single drive letters (both cases).
func DriveLetter() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z]`)
}

// PathSegment returns a generator for a single well-formed path component:
// no separators, no reserved characters, not "." or "..", and no trailing
// dot or space (which the Win32 layer silently strips).
func PathSegment() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z0-9_][A-Za-z0-9_. -]{0,14}`).
		Filter(func(s string) bool {
			return s == strings.TrimRight(s, ". ") && s != "." && s != ".."
		})
}

// AbsoluteNormalizedPath returns a generator for absolute, normalized
// Windows paths of the form X:\seg\seg\... with 1 to maxDepth components.
func AbsoluteNormalizedPath(maxDepth int) *rapid.Generator[string] {
	if maxDepth < 1 {
		maxDepth = 1
	}
	return rapid.Custom(func(t *rapid.T) string {
		drive := DriveLetter().Draw(t, "drive")
		n := rapid.IntRange(1, maxDepth).Draw(t, "depth")
		segments := make([]string, n)
		for i := range segments {
			segments[i] = PathSegment().Draw(t, fmt.Sprintf("segment%d", i))
		}
		return drive + `:\` + strings.Join(segments, `\`)
	})
}

// TraversalSegment returns a generator for "." and ".." components used to
// build paths that the validator must reject.
func TraversalSegment() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{".", ".."})
}
