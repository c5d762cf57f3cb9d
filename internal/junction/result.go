// Package junction creates and inspects Windows directory junctions:
// mount-point reparse points that redirect a directory to another directory
// on the same machine without requiring elevated privileges.
//
// Every operation returns a closed result code next to an optional
// diagnostic error. Contention and transient outcomes (access denied,
// disappeared, already exists) are ordinary results, not failures: the
// filesystem can change between any two system calls, and callers racing
// other processes are expected to see them.
package junction

// CreateResult is the outcome of a Create call.
type CreateResult int

const (
	// CreateSuccess: the junction exists and points at the requested
	// target, whether this call created it or found it already in place.
	CreateSuccess CreateResult = iota

	// CreateTargetNameTooLong: the target exceeds the reparse descriptor's
	// maximum; nothing was touched.
	CreateTargetNameTooLong

	// CreateAccessDenied: another process holds the path open without
	// compatible sharing.
	CreateAccessDenied

	// CreateDisappeared: the path (or a parent) vanished mid-operation.
	CreateDisappeared

	// CreateAlreadyExistsButNotJunction: the path exists and is not a
	// reparse point, so it cannot be converted without destroying data.
	CreateAlreadyExistsButNotJunction

	// CreateAlreadyExistsWithDifferentTarget: the path is a junction
	// pointing somewhere else; it was left untouched.
	CreateAlreadyExistsWithDifferentTarget

	// CreateError: an unexpected failure; the accompanying error carries
	// the diagnostic.
	CreateError
)

// String returns the string representation of the create result.
func (r CreateResult) String() string {
	switch r {
	case CreateSuccess:
		return "success"
	case CreateTargetNameTooLong:
		return "target name too long"
	case CreateAccessDenied:
		return "access denied"
	case CreateDisappeared:
		return "disappeared"
	case CreateAlreadyExistsButNotJunction:
		return "already exists but is not a junction"
	case CreateAlreadyExistsWithDifferentTarget:
		return "already exists with a different target"
	case CreateError:
		return "error"
	default:
		return "unknown"
	}
}

// ReadResult is the outcome of a Read call.
type ReadResult int

const (
	// ReadSuccess: the path is a reparse point and its target was decoded.
	ReadSuccess ReadResult = iota

	// ReadAccessDenied: another process holds the path open without
	// compatible sharing.
	ReadAccessDenied

	// ReadDoesNotExist: the path (or a parent directory) does not exist.
	ReadDoesNotExist

	// ReadNotAJunction: the path exists but carries no reparse data.
	ReadNotAJunction

	// ReadError: an unexpected failure; the accompanying error carries the
	// diagnostic.
	ReadError
)

// String returns the string representation of the read result.
func (r ReadResult) String() string {
	switch r {
	case ReadSuccess:
		return "success"
	case ReadAccessDenied:
		return "access denied"
	case ReadDoesNotExist:
		return "does not exist"
	case ReadNotAJunction:
		return "not a junction"
	case ReadError:
		return "error"
	default:
		return "unknown"
	}
}

// CheckResult is the outcome of an IsJunction call.
type CheckResult int

const (
	// CheckIsJunction: the path is a directory with reparse data.
	CheckIsJunction CheckResult = iota

	// CheckNotJunction: the path exists but is not a junction.
	CheckNotJunction

	// CheckError: the attributes could not be read; the accompanying error
	// carries the diagnostic.
	CheckError
)

// String returns the string representation of the check result.
func (r CheckResult) String() string {
	switch r {
	case CheckIsJunction:
		return "junction"
	case CheckNotJunction:
		return "not a junction"
	case CheckError:
		return "error"
	default:
		return "unknown"
	}
}
