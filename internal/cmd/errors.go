package cmd

import (
	"errors"
	"fmt"

	"github.com/buildmaster/cli/internal/api"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates local input validation failed.
	ErrValidation = errors.New("validation error")

	// ErrConnectivity indicates the backend was unreachable.
	ErrConnectivity = errors.New("connectivity error")

	// ErrUnauthorized indicates a missing or rejected session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates a component, build, or user was not found.
	ErrNotFound = errors.New("not found")
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed marks errors the command layer already reported, so
	// main does not print them twice.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, api.ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrConnectivity), errors.Is(err, api.ErrConnectivity):
		return ExitConnectivityError
	case errors.Is(err, ErrUnauthorized), errors.Is(err, api.ErrUnauthorized):
		return ExitUnauthorized
	case errors.Is(err, ErrNotFound), errors.Is(err, api.ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// WrapValidation wraps an error with ErrValidation.
func WrapValidation(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrValidation, err)
}

// WrapConnectivity wraps an error with ErrConnectivity.
func WrapConnectivity(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrConnectivity, err)
}

// WrapUnauthorized wraps an error with ErrUnauthorized.
func WrapUnauthorized(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrUnauthorized, err)
}

// WrapNotFound wraps an error with ErrNotFound.
func WrapNotFound(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrNotFound, err)
}
