// Package deleter removes files, read-only files, directories, and
// junctions. Directory removal retries a bounded number of times when
// children linger in a marked-for-deletion state, because Windows keeps
// deleted entries visible in their parent until the last handle closes.
package deleter

// DeleteResult is the outcome of a Delete call.
type DeleteResult int

const (
	// DeleteSuccess: the path was removed by this call.
	DeleteSuccess DeleteResult = iota

	// DeleteDoesNotExist: the path (or a parent) was already gone. Reported
	// distinctly from success so callers can tell, but deleting something
	// that is absent needs no retry.
	DeleteDoesNotExist

	// DeleteAccessDenied: another process holds the path open, or we lack
	// permission to remove it.
	DeleteAccessDenied

	// DeleteDirectoryNotEmpty: the directory holds real children, or its
	// pending-deletion children outlived the retry budget.
	DeleteDirectoryNotEmpty

	// DeleteError: an unexpected failure; the accompanying error carries the
	// diagnostic.
	DeleteError
)

// String returns the string representation of the delete result.
func (r DeleteResult) String() string {
	switch r {
	case DeleteSuccess:
		return "success"
	case DeleteDoesNotExist:
		return "does not exist"
	case DeleteAccessDenied:
		return "access denied"
	case DeleteDirectoryNotEmpty:
		return "directory not empty"
	case DeleteError:
		return "error"
	default:
		return "unknown"
	}
}

// DirectoryStatus classifies a directory by its immediate children. The
// status is computed fresh on every scan and never cached; it describes one
// instant of a directory that other processes may be mutating.
type DirectoryStatus int

const (
	// StatusDoesNotExist: the directory could not be enumerated at all.
	StatusDoesNotExist DirectoryStatus = iota

	// StatusEmpty: no children beyond the self and parent pseudo-entries.
	StatusEmpty

	// StatusNotEmpty: at least one genuinely present child.
	StatusNotEmpty

	// StatusChildrenPendingDeletion: every remaining child is already marked
	// for deletion and should vanish once its last handle closes.
	StatusChildrenPendingDeletion
)

// String returns the string representation of the directory status.
func (s DirectoryStatus) String() string {
	switch s {
	case StatusDoesNotExist:
		return "does not exist"
	case StatusEmpty:
		return "empty"
	case StatusNotEmpty:
		return "not empty"
	case StatusChildrenPendingDeletion:
		return "children pending deletion"
	default:
		return "unknown"
	}
}
