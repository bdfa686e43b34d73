// Package errs provides the error kinds shared by the fulfillment core.
// Every kind follows the same shape:
//   - a sentinel error variable (e.g., ErrObjectNotFound, ErrConflict)
//   - a struct type carrying the details the caller needs to react
//   - constructor functions, with and without a cause where a cause makes sense
//   - an Error() method producing a single-line message
//   - an Unwrap() method returning the sentinel, so errors.Is classifies the failure
//
// Input problems:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError for single values
//   - ValidationError carrying a list of FieldError for whole-request validation
//
// Business rule violations:
//   - ObjectNotFoundError when a referenced order, shipment, NDR case or warehouse is missing
//   - ConflictError when a booking or settlement guard loses a race
//   - RateUnavailableError when no rate card matches; a zero price is never fabricated
//   - InvalidTransitionError when a state machine refuses a transition
//
// The HTTP adapter maps sentinels to status codes; core code never retries.
package errs
