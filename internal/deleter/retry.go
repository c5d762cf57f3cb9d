package deleter

import "time"

// RetryPolicy bounds the directory-removal retry loop. The policy is plain
// data so tests can inject a zero-backoff, low-attempt variant.
type RetryPolicy struct {
	// MaxAttempts is the number of removal attempts before giving up with
	// a directory-not-empty result.
	MaxAttempts int

	// Backoff is how long to sleep before retrying while children are
	// still pending deletion. No sleep happens when a rescan finds the
	// directory already empty.
	Backoff time.Duration
}

// DefaultRetryPolicy bounds the loop to roughly 100-120ms of wall time:
// lingering deleted children normally disappear within a few milliseconds,
// but a process holding a child handle indefinitely must not hang us.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 20,
		Backoff:     5 * time.Millisecond,
	}
}
