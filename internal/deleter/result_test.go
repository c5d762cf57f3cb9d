package deleter

import (
	"testing"
	"time"
)

func TestDeleteResultStrings(t *testing.T) {
	tests := []struct {
		result DeleteResult
		want   string
	}{
		{DeleteSuccess, "success"},
		{DeleteDoesNotExist, "does not exist"},
		{DeleteAccessDenied, "access denied"},
		{DeleteDirectoryNotEmpty, "directory not empty"},
		{DeleteError, "error"},
		{DeleteResult(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.result.String(); got != tt.want {
			t.Errorf("DeleteResult(%d).String() = %q, want %q", int(tt.result), got, tt.want)
		}
	}
}

func TestDirectoryStatusStrings(t *testing.T) {
	tests := []struct {
		status DirectoryStatus
		want   string
	}{
		{StatusDoesNotExist, "does not exist"},
		{StatusEmpty, "empty"},
		{StatusNotEmpty, "not empty"},
		{StatusChildrenPendingDeletion, "children pending deletion"},
		{DirectoryStatus(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("DirectoryStatus(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}

func TestDefaultRetryPolicy(t *testing.T) {
	policy := DefaultRetryPolicy()
	if policy.MaxAttempts != 20 {
		t.Errorf("MaxAttempts = %d, want 20", policy.MaxAttempts)
	}
	if policy.Backoff != 5*time.Millisecond {
		t.Errorf("Backoff = %v, want 5ms", policy.Backoff)
	}
	// Worst case must stay comfortably below a second so a stuck directory
	// cannot stall a batch deletion.
	worstCase := time.Duration(policy.MaxAttempts) * policy.Backoff
	if worstCase > time.Second {
		t.Errorf("worst-case retry time %v exceeds one second", worstCase)
	}
}
