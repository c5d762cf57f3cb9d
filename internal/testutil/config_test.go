package testutil

import "testing"

func TestGetTestConfigDefaultsToQuick(t *testing.T) {
	t.Setenv("TEST_QUICK", "")
	t.Setenv("TEST_INTENSITY", "")
	t.Setenv("VERBOSE_TESTS", "")

	config := GetTestConfig()
	if config.Intensity != IntensityQuick {
		t.Errorf("default intensity = %v, want quick", config.Intensity)
	}
	if config.IterationCount != 25 {
		t.Errorf("quick IterationCount = %d, want 25", config.IterationCount)
	}
	if config.VerboseOutput {
		t.Error("VerboseOutput should default to false")
	}
}

func TestGetTestConfigThorough(t *testing.T) {
	t.Setenv("TEST_QUICK", "")
	t.Setenv("TEST_INTENSITY", "thorough")

	config := GetTestConfig()
	if config.Intensity != IntensityThorough {
		t.Errorf("intensity = %v, want thorough", config.Intensity)
	}
	if config.IterationCount != 200 {
		t.Errorf("thorough IterationCount = %d, want 200", config.IterationCount)
	}
}

// TEST_QUICK wins over TEST_INTENSITY so one variable can force fast runs
// regardless of the CI environment.
func TestQuickOverridesIntensity(t *testing.T) {
	t.Setenv("TEST_QUICK", "1")
	t.Setenv("TEST_INTENSITY", "thorough")

	config := GetTestConfig()
	if config.Intensity != IntensityQuick {
		t.Errorf("intensity = %v, want quick (TEST_QUICK set)", config.Intensity)
	}
}

func TestVerboseTestsFlag(t *testing.T) {
	for _, value := range []string{"1", "true", "TRUE"} {
		t.Setenv("VERBOSE_TESTS", value)
		if config := GetTestConfig(); !config.VerboseOutput {
			t.Errorf("VERBOSE_TESTS=%q should enable verbose output", value)
		}
	}
}

func TestIntensityStrings(t *testing.T) {
	tests := []struct {
		intensity TestIntensity
		want      string
	}{
		{IntensityQuick, "quick"},
		{IntensityThorough, "thorough"},
		{TestIntensity(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.intensity.String(); got != tt.want {
			t.Errorf("TestIntensity(%d).String() = %q, want %q", int(tt.intensity), got, tt.want)
		}
	}
}
