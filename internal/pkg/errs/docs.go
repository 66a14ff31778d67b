// Package errs provides standardized error types for the kiosk backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package defines one error family per rejection class the HTTP surface
// exposes:
//   - ValueIsRequiredError: a required value is missing (400)
//   - ValueIsInvalidError: a value is malformed or unexpected (400)
//   - ValueIsOutOfRangeError: a value is outside its allowed range (400)
//   - ObjectNotFoundError: a referenced entity does not exist (404)
//   - ObjectUnavailableError: an entity exists but cannot be used, such as an
//     out-of-stock item referenced by a new order (410)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The HTTP adapter classifies errors with errors.Is against the sentinels to
// pick response status codes, so no handler inspects error strings.
package errs
