// Package testutil provides shared helpers for running this project's
// tests at different intensity levels, generating well-formed (and
// deliberately malformed) Windows paths for property tests, and building
// filesystem fixtures.
package testutil

import (
	"fmt"
	"os"
	"strings"
)

// TestIntensity represents the thoroughness level of test execution.
type TestIntensity int

const (
	// IntensityQuick runs tests with few iterations for fast feedback during development.
	IntensityQuick TestIntensity = iota
	// IntensityThorough runs tests with comprehensive iteration counts for CI.
	IntensityThorough
)

// String returns the string representation of the test intensity.
func (ti TestIntensity) String() string {
	switch ti {
	case IntensityQuick:
		return "quick"
	case IntensityThorough:
		return "thorough"
	default:
		return "unknown"
	}
}

// TestConfig holds configuration parameters for test execution.
type TestConfig struct {
	// Intensity level (quick or thorough)
	Intensity TestIntensity

	// Number of iterations for property tests
	IterationCount int

	// Enable verbose test output
	VerboseOutput bool
}

// GetTestConfig returns the current test configuration based on environment
// variables. It reads TEST_INTENSITY, TEST_QUICK, and VERBOSE_TESTS.
// Defaults to quick mode if no environment variables are set.
func GetTestConfig() TestConfig {
	config := TestConfig{}

	// TEST_QUICK override takes precedence
	testQuick := os.Getenv("TEST_QUICK")
	if testQuick == "1" || strings.ToLower(testQuick) == "true" {
		config.Intensity = IntensityQuick
	} else {
		switch strings.ToLower(os.Getenv("TEST_INTENSITY")) {
		case "thorough":
			config.Intensity = IntensityThorough
		default:
			config.Intensity = IntensityQuick
		}
	}

	switch config.Intensity {
	case IntensityQuick:
		config.IterationCount = 25
	case IntensityThorough:
		config.IterationCount = 200
	}

	verboseTests := os.Getenv("VERBOSE_TESTS")
	config.VerboseOutput = verboseTests == "1" || strings.ToLower(verboseTests) == "true"

	return config
}

var testConfig TestConfig

func init() {
	testConfig = GetTestConfig()
	if testConfig.VerboseOutput {
		fmt.Printf("Test intensity mode: %s (iterations=%d)\n",
			testConfig.Intensity, testConfig.IterationCount)
	}
}
