// Package diag builds structured diagnostic errors for filesystem
// operations. Every error records the source location of the failing call
// site, the operation name, the path it was applied to, and the cause
// (either an OS error code or a free-text explanation).
//
// The rendered format is:
//
//	<file.go:line> <operation>(<path>): <cause>
//
// The format is intended for humans and log files only; callers that need
// to branch on outcomes should use the result enums returned next to the
// error, never parse the message.
package diag

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"syscall"
)

// Error is a diagnostic error with enough context to debug a failed
// filesystem operation without reproducing it.
type Error struct {
	// Location is the file:line of the call site that produced the error.
	Location string

	// Operation is the name of the failing operation, usually the Win32
	// API name (e.g. "CreateFileW") or the public operation name.
	Operation string

	// Path is the path the operation was applied to.
	Path string

	// Cause is a free-text explanation. Empty when Code carries the cause.
	Cause string

	// Code is the numeric OS error code, 0 when Cause is textual.
	Code syscall.Errno

	// wrapped is the underlying OS error, when one exists.
	wrapped error
}

// Error renders the diagnostic in the canonical format.
func (e *Error) Error() string {
	cause := e.Cause
	if cause == "" {
		cause = fmt.Sprintf("error %d (0x%08x)", uint64(e.Code), uint64(e.Code))
	}
	return fmt.Sprintf("%s %s(%s): %s", e.Location, e.Operation, e.Path, cause)
}

// Unwrap exposes the underlying OS error for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// OSError builds a diagnostic from an error returned by a syscall wrapper.
// The numeric code is extracted when the error carries a syscall.Errno.
func OSError(operation, path string, err error) *Error {
	e := &Error{
		Location:  callerLocation(2),
		Operation: operation,
		Path:      path,
		wrapped:   err,
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		e.Code = errno
	} else if err != nil {
		e.Cause = err.Error()
	}
	return e
}

// Text builds a diagnostic with a free-text cause and no OS error code.
func Text(operation, path, cause string) *Error {
	return &Error{
		Location:  callerLocation(2),
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// callerLocation formats the file:line of the caller `skip` frames up.
// Only the base name of the file is kept; full build paths add noise
// without helping identify the call site.
func callerLocation(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown:0"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
