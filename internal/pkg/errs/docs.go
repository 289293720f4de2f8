// Package errs defines the error taxonomy of the restaurant backend.
//
// Every failure the application reports falls into one of a small set of
// kinds, each with a sentinel for classification and a struct type carrying
// the details:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed range
//   - ObjectNotFoundError: a referenced object does not exist
//   - AccessDeniedError: the acting user lacks the required role
//   - StateConflictError: the operation violates the current lifecycle state
//   - InsufficientStockError: an order asks for more stock than is available
//
// Each kind provides constructors with and without an underlying cause, an
// Error method for the human-readable message, and an Unwrap method to its
// sentinel, so callers classify errors with errors.Is and the HTTP adapter
// maps them onto status codes without inspecting messages.
package errs
