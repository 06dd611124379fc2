// Package errs provides standardized error types for the order coordination service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify the error kind
//
// The HTTP adapter relies on the sentinels to translate failures into
// user-visible categories: fix your input (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange), not allowed (ErrNotAuthorized), missing
// (ErrObjectNotFound), and try again (ErrConflict).
package errs
