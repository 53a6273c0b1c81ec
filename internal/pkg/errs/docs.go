// Package errs provides standardized error types for the workshop application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per failure category:
//   - ValueIsRequiredError: a required value is missing or empty
//   - ValueIsInvalidError: a supplied value is malformed or outside the accepted set
//   - ObjectNotFoundError: a referenced object cannot be found
//   - GuardViolationError: an operation is not permitted from the current status
//   - ConflictError: the requested change contradicts existing state
//   - PersistenceFailureError: a gateway write reported no effect where one was expected
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The use-case layer raises these typed errors and never decides transport
// status codes; the HTTP boundary classifies failures with errors.Is against
// the sentinels and maps each category to a status code.
package errs
