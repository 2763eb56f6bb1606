// Package errors provides standardized error handling for pillar.
// It defines the error kinds the browsing core distinguishes and helper
// functions for consistent creation, wrapping, and checking.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds. None of these is fatal to the process: Unreadable is
// surfaced as a marker listing, InvalidOperation degrades to a no-op,
// OutOfRange is clamped wherever a numeric index is involved.
const (
	Unknown ErrorKind = iota
	Unreadable
	InvalidOperation
	OutOfRange
	InvalidConfig
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// PathError represents errors tied to a filesystem path
type PathError struct {
	ApplicationError
	path string
}

// NewPathError creates a new path error
func NewPathError(msg string, path string, kind ErrorKind, err error) *PathError {
	return &PathError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the path error message
func (e *PathError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the path associated with the error
func (e *PathError) Path() string {
	return e.path
}

// NewUnreadable creates the error attached to an unreadable marker listing.
func NewUnreadable(path string, err error) *PathError {
	return NewPathError("directory unreadable", path, Unreadable, err)
}

// NewInvalidOperation creates an error for an operation the current state
// does not permit, such as closing the last remaining tab.
func NewInvalidOperation(msg string) error {
	return &ApplicationError{msg: msg, kind: InvalidOperation}
}

// NewOutOfRange creates an error for an index outside current bounds.
func NewOutOfRange(format string, args ...interface{}) error {
	return &ApplicationError{msg: fmt.Sprintf(format, args...), kind: OutOfRange}
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{msg: msg, kind: Unknown}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{msg: fmt.Sprintf(format, args...), kind: Unknown}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: msg, err: err, kind: kindOf(err)}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: fmt.Sprintf(format, args...), err: err, kind: kindOf(err)}
}

func kindOf(err error) ErrorKind {
	var app *ApplicationError
	if errors.As(err, &app) {
		return app.kind
	}
	var pe *PathError
	if errors.As(err, &pe) {
		return pe.kind
	}
	return Unknown
}

// IsUnreadable checks if the error marks an unreadable directory
func IsUnreadable(err error) bool {
	return kindOf(err) == Unreadable
}

// IsInvalidOperation checks if the error marks a disallowed operation
func IsInvalidOperation(err error) bool {
	return kindOf(err) == InvalidOperation
}

// IsOutOfRange checks if the error marks an out-of-bounds index
func IsOutOfRange(err error) bool {
	return kindOf(err) == OutOfRange
}

// IsInvalidConfig checks if the error marks a bad configuration value
func IsInvalidConfig(err error) bool {
	return kindOf(err) == InvalidConfig
}

// NewConfigError creates a configuration error for a named parameter
func NewConfigError(msg string, param string, err error) error {
	if param != "" {
		msg = fmt.Sprintf("%s: %s", msg, param)
	}
	return &ApplicationError{msg: msg, err: err, kind: InvalidConfig}
}
