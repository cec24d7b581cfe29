package common

import "github.com/pkg/errors"

// ProtocolError is the catch-all error type for conditions that should halt
// processing of the current event or round: invalid construction arguments,
// or protocol invariants found violated far from their cause. It carries a
// message and an optional underlying cause. It is NOT used for regular store
// lookups; those return StoreErr values which callers are expected to handle.
type ProtocolError struct {
	Msg   string
	Cause error
}

// NewProtocolError creates a ProtocolError without an underlying cause.
func NewProtocolError(msg string) ProtocolError {
	return ProtocolError{Msg: msg}
}

// WrapProtocolError wraps an underlying error in a ProtocolError. It returns
// nil when err is nil so it can be used on the return path of fallible calls.
func WrapProtocolError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return ProtocolError{Msg: msg, Cause: errors.WithStack(err)}
}

// Error implements the error interface.
func (e ProtocolError) Error() string {
	if e.Cause == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Cause.Error()
}

// Unwrap returns the underlying cause, if any.
func (e ProtocolError) Unwrap() error {
	return e.Cause
}

// IsProtocolError checks whether an error is a ProtocolError, including
// wrapped causes.
func IsProtocolError(err error) bool {
	for err != nil {
		if _, ok := err.(ProtocolError); ok {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
