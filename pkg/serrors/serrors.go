// Package serrors provides semantic error kinds for the service's error
// taxonomy. A kind is a comparable sentinel; the Error wrapper attaches a
// kind plus an optional cause and message while staying compatible with
// errors.Is/As.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name.
func NewKind(name string) Kind { return kind{s: name} }

// The error taxonomy of the service. SourceUnavailable-class failures
// (network, timeout, non-2xx) map to ErrUnavailable and are recovered into
// degraded results; they never abort a check.
var (
	// ErrUnavailable indicates an upstream source could not be reached or
	// answered with a server failure.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited indicates the upstream rejected the request for rate
	// reasons; treated like ErrUnavailable for the affected item.
	ErrRateLimited = NewKind("RATE_LIMITED")
	// ErrBadRequest indicates invalid caller input (malformed identifier or
	// password), rejected before any external call.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates a persistence conflict, e.g. adding a duplicate
	// active watch.
	ErrConflict = NewKind("CONFLICT")
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid upstream credentials.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrTimeout indicates the operation exceeded its deadline.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error carrying a kind, an optional wrapped cause and
// an optional message. errors.Is/As match against both the kind sentinel and
// the wrapped cause.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind that wraps cause err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause, enabling errors.Unwrap/Is/As traversal.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel and the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches target against the kind sentinel and the wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }
