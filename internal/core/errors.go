package core

import (
	"errors"
	"fmt"
)

// Predefined errors returned by dbexec command operations.
var (
	// ErrInvalidArgument is returned when command text is empty or whitespace-only.
	ErrInvalidArgument = errors.New("command text must not be empty")
	// ErrNoResult is returned when a single-table accessor is invoked against a
	// result set containing zero tables.
	ErrNoResult = errors.New("result set contains no tables")
	// ErrNegativeTimeout is returned when a negative command timeout is set.
	ErrNegativeTimeout = errors.New("timeout must not be negative")
	// ErrStoredProceduresUnsupported is returned when a stored-procedure command is
	// built for a dialect without stored-procedure support.
	ErrStoredProceduresUnsupported = errors.New("dialect does not support stored procedures")
	// ErrOutputParamsUnsupported is returned when an Output or InputOutput parameter
	// is bound on a dialect without output-parameter support.
	ErrOutputParamsUnsupported = errors.New("dialect does not support output parameters")
)

// DuplicateParameterError is returned when adding a parameter whose name already
// exists in the collection. The collection keeps the first entry.
type DuplicateParameterError struct {
	Name string
}

func (e *DuplicateParameterError) Error() string {
	return fmt.Sprintf("parameter %q already exists in the collection", e.Name)
}

// ParameterNotFoundError is returned when looking up a name that is not present
// and not resolvable as RETURN_VALUE.
type ParameterNotFoundError struct {
	Name string
}

func (e *ParameterNotFoundError) Error() string {
	return fmt.Sprintf("parameter %q not found in the collection", e.Name)
}

// ExecutionError wraps a failure surfaced by the underlying driver during bind or
// run, carrying the command text for diagnosis without re-running.
type ExecutionError struct {
	Text string
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("executing %q: %v", e.Text, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// WrapError wraps an error with additional context message.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
