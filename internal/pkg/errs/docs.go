// Package errs provides the error taxonomy of the order dispatch service.
//
// Validation family (grouped by IsValidation):
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value breaks a domain rule
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//
// Dispatch and lifecycle:
//   - ObjectNotFoundError: lookup by identifier found nothing
//   - ConflictError: business rule violation, e.g. a consumer's active-order limit
//   - CourierBusyError: courier already has an order on the way
//   - AlreadyClaimedError: order exists but lost the claim race
//   - ForbiddenError: ownership or identity-kind mismatch
//   - InvalidTransitionError: illegal order status edge
//   - UnauthenticatedError: credential could not be resolved
//
// Each type follows the same pattern: a sentinel variable, a struct with the
// error details, constructors with and without cause, Error() and Unwrap()
// returning the sentinel so that errors.Is works across wrapping.
package errs
