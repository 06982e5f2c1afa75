// Package errs provides the error kinds shared by the shipment order service.
//
// Each kind follows the same shape:
//   - a sentinel error variable (e.g., ErrValueIsRequired) for errors.Is checks
//   - a struct type carrying the offending parameter and an optional cause
//   - New... and New...WithCause constructors
//   - Unwrap returning the sentinel
//
// Kinds:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value breaks a domain rule (negative amount, unknown enum)
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: a lookup by identifier found nothing
package errs
