// Package apperr defines the semantic error kinds surfaced to the user.
//
// A kind is a sentinel; an *Error carries a kind, a message and an optional
// cause, and matches both with errors.Is.
package apperr

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Kind is a semantic error category.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrUnauthorized means Zebra rejected the credentials.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrNotFound means the requested resource does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrServer means Zebra answered with a 5xx status.
	ErrServer = NewKind("SERVER_ERROR")
	// ErrUnexpectedResponse means the response could not be understood.
	ErrUnexpectedResponse = NewKind("UNEXPECTED_RESPONSE")
	// ErrPushFailed means an entry could not be pushed.
	ErrPushFailed = NewKind("PUSH_FAILED")
	// ErrInvalidConfig means the configuration is unusable.
	ErrInvalidConfig = NewKind("INVALID_CONFIG")
)

// Error is a semantic error carrying a kind, a message and an optional cause.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs an error of kind k wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

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
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches the kind sentinel or the cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	return e.err != nil && errors.Is(e.err, target)
}

// Kind returns the kind of the error.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message without the cause, the text meant for users.
func (e *Error) Message() string { return e.msg }

// UserMessage returns the most helpful text to show for err.
func UserMessage(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.msg != "" {
		return ae.msg
	}
	return err.Error()
}
