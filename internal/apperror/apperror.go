package apperror

import (
	"github.com/pkg/errors"
)

// Sentinel errors for the domain. Handlers map each kind to an HTTP status;
// everything unrecognized is treated as internal and surfaced as 500 with no
// detail leaked to the caller.
var (
	ErrValidation   = errors.New("validation failed")
	ErrSelfTarget   = errors.New("cannot target yourself")
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("action not valid for current status")
	ErrUnauthorized = errors.New("unauthorized")
)

// Validation wraps ErrValidation with a client-facing detail message.
func Validation(msg string) error {
	return errors.Wrap(ErrValidation, msg)
}

// NotFound wraps ErrNotFound naming the missing resource.
func NotFound(resource string) error {
	return errors.Wrap(ErrNotFound, resource)
}

// Forbidden wraps ErrForbidden with a client-facing detail message.
func Forbidden(msg string) error {
	return errors.Wrap(ErrForbidden, msg)
}

// Conflict wraps ErrConflict with a client-facing detail message.
func Conflict(msg string) error {
	return errors.Wrap(ErrConflict, msg)
}

// InvalidState wraps ErrInvalidState with a client-facing detail message.
func InvalidState(msg string) error {
	return errors.Wrap(ErrInvalidState, msg)
}

// Unauthorized wraps ErrUnauthorized with a client-facing detail message.
func Unauthorized(msg string) error {
	return errors.Wrap(ErrUnauthorized, msg)
}
