package errs

import (
	"errors"
	"fmt"
)

var (
	ErrConflict          = errors.New("conflict")
	ErrCourierBusy       = errors.New("courier is busy")
	ErrAlreadyClaimed    = errors.New("order already claimed")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnauthenticated   = errors.New("unauthenticated")
)

// ConflictError reports a business rule violation such as the active-order limit.
type ConflictError struct {
	Reason string
	Cause  error
}

func NewConflictError(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

func NewConflictErrorWithCause(reason string, cause error) *ConflictError {
	return &ConflictError{Reason: reason, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrConflict, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// CourierBusyError is returned when a courier already carries an order.
type CourierBusyError struct {
	CourierID any
}

func NewCourierBusyError(courierID any) *CourierBusyError {
	return &CourierBusyError{CourierID: courierID}
}

func (e *CourierBusyError) Error() string {
	return fmt.Sprintf("%s: courier %v already has an order on the way", ErrCourierBusy, e.CourierID)
}

func (e *CourierBusyError) Unwrap() error {
	return ErrCourierBusy
}

// AlreadyClaimedError means the order exists but is no longer claimable.
// Callers should refresh the ready list and try another order.
type AlreadyClaimedError struct {
	OrderID any
}

func NewAlreadyClaimedError(orderID any) *AlreadyClaimedError {
	return &AlreadyClaimedError{OrderID: orderID}
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("%s: %v", ErrAlreadyClaimed, e.OrderID)
}

func (e *AlreadyClaimedError) Unwrap() error {
	return ErrAlreadyClaimed
}

// ForbiddenError reports an ownership or identity-kind mismatch.
type ForbiddenError struct {
	Action string
	Cause  error
}

func NewForbiddenError(action string) *ForbiddenError {
	return &ForbiddenError{Action: action}
}

func NewForbiddenErrorWithCause(action string, cause error) *ForbiddenError {
	return &ForbiddenError{Action: action, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrForbidden, e.Action, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrForbidden, e.Action)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidTransitionError reports an illegal edge in the order lifecycle.
type InvalidTransitionError struct {
	From fmt.Stringer
	To   fmt.Stringer
}

func NewInvalidTransitionError(from, to fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UnauthenticatedError is returned when a credential cannot be resolved.
type UnauthenticatedError struct {
	Cause error
}

func NewUnauthenticatedError() *UnauthenticatedError {
	return &UnauthenticatedError{}
}

func NewUnauthenticatedErrorWithCause(cause error) *UnauthenticatedError {
	return &UnauthenticatedError{Cause: cause}
}

func (e *UnauthenticatedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", ErrUnauthenticated, e.Cause)
	}
	return ErrUnauthenticated.Error()
}

func (e *UnauthenticatedError) Unwrap() error {
	return ErrUnauthenticated
}
