// Package clierr defines the failures a run can end with and their exit codes.
package clierr

import (
	"errors"
	"fmt"
)

// Kind identifies a failure category.
type Kind int

const (
	MissingFilePath Kind = iota + 1
	InvalidMinLength
	InvalidStartsWith
	FileNotFound
	PermissionDenied
	ReadFailed
	EmptyFile
	InvalidConfigFile
)

// Reasons attached to flag validation failures.
const (
	ReasonMissingValue = "Missing value"
	ReasonNotNumber    = "Not a number"
	ReasonNotChar      = "Not a char"
	ReasonNotLetter    = "Must be a letter"
)

// ExitCode returns the process exit code for the kind.
func (k Kind) ExitCode() int {
	switch k {
	case MissingFilePath:
		return 1
	case InvalidMinLength:
		return 2
	case InvalidStartsWith:
		return 3
	case FileNotFound:
		return 4
	case PermissionDenied:
		return 5
	case ReadFailed:
		return 6
	case EmptyFile:
		return 7
	case InvalidConfigFile:
		return 8
	default:
		return 1
	}
}

// Error is a terminal failure. Value and Reason describe a rejected flag
// value, Path names the file involved, Err holds the underlying cause.
type Error struct {
	Kind   Kind
	Value  string
	Reason string
	Path   string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case MissingFilePath:
		return "Missing file path."
	case InvalidMinLength:
		return fmt.Sprintf("Invalid --min-length '%s': %s", e.Value, e.Reason)
	case InvalidStartsWith:
		return fmt.Sprintf("Invalid --starts-with '%s': %s", e.Value, e.Reason)
	case FileNotFound:
		return fmt.Sprintf("File '%s' not found.", e.Path)
	case PermissionDenied:
		return fmt.Sprintf("Permission denied reading '%s'.", e.Path)
	case ReadFailed:
		return fmt.Sprintf("Failed to read '%s': %v", e.Path, e.Err)
	case EmptyFile:
		return "File is empty."
	case InvalidConfigFile:
		return fmt.Sprintf("Invalid --config '%s': %s", e.Value, e.Reason)
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode maps any error to a process exit code. Errors that are not an
// *Error exit with 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Kind.ExitCode()
	}
	return 1
}

// InvalidValue builds a flag validation failure of the given kind.
func InvalidValue(kind Kind, value, reason string) *Error {
	return &Error{Kind: kind, Value: value, Reason: reason}
}
