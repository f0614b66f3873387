package common

import (
	"errors"
	"fmt"
)

const errFmt = "%s: %s"

// Error kinds returned by the service layer. Handlers map these onto
// transport status codes, callers branch on them with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
	ErrExpired    = errors.New("expired")
	ErrInternal   = errors.New("internal error")
)

// Error attaches a message to one of the kind sentinels above.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.kind
}

// Wrap constructs an Error of the given kind with proper messaging.
func Wrap(kind error, format string, args ...interface{}) error {
	return &Error{
		kind: kind,
		msg: fmt.Sprintf(
			errFmt,
			kind, fmt.Sprintf(format, args...),
		),
	}
}

// IsValidation indicates if err is of kind ErrValidation.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsConflict indicates if err is of kind ErrConflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsForbidden indicates if err is of kind ErrForbidden.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsNotFound indicates if err is of kind ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsExpired indicates if err is of kind ErrExpired.
func IsExpired(err error) bool {
	return errors.Is(err, ErrExpired)
}

// IsInternal indicates if err is of kind ErrInternal.
func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}
