package service

import "errors"

// Error kinds. Handlers map these to HTTP statuses with errors.Is, so no
// caller ever inspects message strings.
var (
	ErrInternal     = errors.New("internal server error")
	ErrUnauthorized = errors.New("invalid authentication credentials")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Error pairs a kind with a stable, resource-specific message. The kind is
// reachable through errors.Is via Unwrap.
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.kind
}

func unauthorized(message string) error {
	return &Error{kind: ErrUnauthorized, message: message}
}

func forbidden(message string) error {
	return &Error{kind: ErrForbidden, message: message}
}

func notFound(message string) error {
	return &Error{kind: ErrNotFound, message: message}
}

func invalid(message string) error {
	return &Error{kind: ErrInvalidInput, message: message}
}
