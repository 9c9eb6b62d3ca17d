// internal/pkg/errors/errors.go
package xerrors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error. The HTTP layer maps kinds to status
// codes; services never reference transport status directly.
type Kind string

const (
	KindNotFound           Kind = "NOT_FOUND"
	KindInvalidInput       Kind = "INVALID_INPUT"
	KindInvalidTransition  Kind = "INVALID_TRANSITION"
	KindPreconditionFailed Kind = "PRECONDITION_FAILED"
	KindConflict           Kind = "CONFLICT"
	KindUnauthorized       Kind = "UNAUTHORIZED"
	KindForbidden          Kind = "FORBIDDEN"
	KindRateLimited        Kind = "RATE_LIMITED"
	KindInternal           Kind = "INTERNAL"
)

// Error carries a stable kind and a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

// KindOf returns the kind of err, or KindInternal for plain errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return newf(KindNotFound, format, args...)
}

func InvalidInputf(format string, args ...interface{}) *Error {
	return newf(KindInvalidInput, format, args...)
}

func InvalidTransitionf(format string, args ...interface{}) *Error {
	return newf(KindInvalidTransition, format, args...)
}

func PreconditionFailedf(format string, args ...interface{}) *Error {
	return newf(KindPreconditionFailed, format, args...)
}

func Conflictf(format string, args ...interface{}) *Error {
	return newf(KindConflict, format, args...)
}

func Unauthorizedf(format string, args ...interface{}) *Error {
	return newf(KindUnauthorized, format, args...)
}

func Forbiddenf(format string, args ...interface{}) *Error {
	return newf(KindForbidden, format, args...)
}

func RateLimitedf(format string, args ...interface{}) *Error {
	return newf(KindRateLimited, format, args...)
}

// Internalf wraps an underlying failure (store errors, broken invariants)
// while keeping the caller-facing message stable.
func Internalf(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...), err: err}
}

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
