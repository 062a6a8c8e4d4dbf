// Package apperrors holds the typed errors of the tour hosts (configuration,
// tour loading and validation, unavailable references) and maps them to
// process exit codes.
//
// Types that carry a cause implement Unwrap, so callers match them with
// errors.Is and errors.As after wrapping with %w.
package apperrors
