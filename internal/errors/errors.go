package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Process exit codes of the tour hosts.
const (
	ExitSuccess       = 0   // The session ended normally.
	ExitErrorGeneric  = 1   // Any failure without a more specific code.
	ExitErrorTour     = 3   // The tour definition could not be loaded or is invalid.
	ExitErrorConfig   = 4   // Flags or environment overrides were rejected.
	ExitErrorCanceled = 130 // The session was interrupted (SIGINT, SIGTERM, timeout).
)

// ConfigError reports a flag or environment value the hosts cannot run with.
type ConfigError struct {
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError formats a ConfigError like fmt.Sprintf.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// TourError wraps a failure to load or decode a tour definition while
// preserving the original cause and the source it was read from.
type TourError struct {
	// Source is the file path or logical name of the tour.
	Source string
	// Cause is the underlying error.
	Cause error
}

// Error returns a message naming the tour source and the cause.
func (e TourError) Error() string {
	return fmt.Sprintf("tour %q: %v", e.Source, e.Cause)
}

// Unwrap returns the decode or I/O error behind the failure.
func (e TourError) Unwrap() error { return e.Cause }

// ValidationError represents a tour validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the path of the field that failed validation (e.g. "steps[3].duration").
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// RefKind names the category of a collaborator reference.
type RefKind string

// Reference categories used by UnavailableError.
const (
	RefAnimator RefKind = "animator"
	RefControl  RefKind = "control"
	RefInput    RefKind = "input"
)

// UnavailableError reports that a step referenced a collaborator that could
// not be resolved. The orchestrator never returns it to callers; it is
// logged and counted, and the step's contribution is skipped.
type UnavailableError struct {
	Kind RefKind
	ID   string
}

// Error returns a formatted message naming the missing reference.
func (e UnavailableError) Error() string {
	return fmt.Sprintf("%s %q is unavailable", e.Kind, e.ID)
}

// WrapError prefixes err with a formatted context message, keeping it
// reachable through errors.Is and errors.As. A nil err stays nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err comes from a cancelled or expired context.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error returned by the application layer to an exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var configErr ConfigError
	var tourErr TourError
	var validationErr ValidationError
	switch {
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &tourErr), errors.As(err, &validationErr):
		return ExitErrorTour
	default:
		return ExitErrorGeneric
	}
}
