// Package errs provides standardized error types for the fulfillment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure taxonomy of the decision
// engine:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ObjectNotFoundError: for when a referenced entity cannot be found
//   - UnavailableError: for when a collaborator call fails (always non-fatal)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrUnavailable)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Nothing in this taxonomy is fatal to a processing run: callers classify
// failures with errors.Is and degrade to the documented default behavior.
package errs
