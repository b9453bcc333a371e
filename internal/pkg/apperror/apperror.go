package apperror

import (
	"errors"
	"fmt"
)

// Sentinel errors classify every failure the services can surface.
// Controllers never inspect these directly; the error handler middleware
// maps them to HTTP status codes.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrBadRequest         = errors.New("bad request")
	ErrConflict           = errors.New("conflict")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrInternal           = errors.New("internal error")
)

// New wraps a sentinel with a human-readable detail message.
func New(kind error, detail string) error {
	return fmt.Errorf("%w: %s", kind, detail)
}

// Newf wraps a sentinel with a formatted detail message.
func Newf(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// Detail strips the sentinel prefix, leaving the message intended for the
// client. Falls back to the full error text for unwrapped errors.
func Detail(err error) string {
	for _, kind := range []error{
		ErrUnauthorized, ErrNotFound, ErrForbidden, ErrBadRequest,
		ErrConflict, ErrServiceUnavailable, ErrInternal,
	} {
		if errors.Is(err, kind) {
			prefix := kind.Error() + ": "
			msg := err.Error()
			if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
				return msg[len(prefix):]
			}
			return msg
		}
	}
	return err.Error()
}
