package fault

import (
	"errors"
	"fmt"
)

// Failure classes surfaced by every domain operation. Handlers map these to
// HTTP status codes with errors.Is; nothing in the core retries on any of them.
var (
	ErrValidation         = errors.New("validation failed")
	ErrAuthorization      = errors.New("not authorized")
	ErrInvalidState       = errors.New("invalid state transition")
	ErrInsufficientBudget = errors.New("insufficient budget")
	ErrNotFound           = errors.New("not found")
)

func Validationf(format string, args ...any) error {
	return wrap(ErrValidation, format, args...)
}

func Authorizationf(format string, args ...any) error {
	return wrap(ErrAuthorization, format, args...)
}

func InvalidStatef(format string, args ...any) error {
	return wrap(ErrInvalidState, format, args...)
}

func NotFoundf(format string, args ...any) error {
	return wrap(ErrNotFound, format, args...)
}

func wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
