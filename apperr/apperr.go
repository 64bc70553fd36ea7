// Package apperr defines the error kinds shared by the stores and the HTTP
// layer. Handlers map a Kind to a status code; everything not carrying a
// Kind is treated as internal.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Internal Kind = iota
	Validation
	NotFound
	Conflict
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error carries a caller-facing message and, for internal errors, the
// underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validationf(format string, args ...any) error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) error {
	return &Error{Kind: Conflict, Message: fmt.Sprintf(format, args...)}
}

// Wrap marks err as internal. The message is what gets logged; callers only
// ever see a generic text.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: Internal, Message: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Message returns the caller-facing message for err. Internal errors get a
// generic text.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Internal {
		return e.Message
	}
	return "internal server error"
}

func IsNotFound(err error) bool   { return KindOf(err) == NotFound }
func IsValidation(err error) bool { return KindOf(err) == Validation }
func IsConflict(err error) bool   { return KindOf(err) == Conflict }
