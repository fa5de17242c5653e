package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Cooking ──> Ready ──> OnTheWay ──> Delivered
//
// Edges only move forward one step at a time. Delivered is terminal.
type Status int

const (
	// Unknown is the zero value and never a persisted state. It is used as
	// the "from" side of the creation transition.
	Unknown Status = iota

	// Cooking is the initial status; the restaurant is preparing the order.
	Cooking

	// Ready means the order waits for a courier to claim it.
	Ready

	// OnTheWay means a courier has claimed the order and is delivering it.
	OnTheWay

	// Delivered is the terminal status.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Cooking:   "COOKING",
		Ready:     "READY",
		OnTheWay:  "ONTHEWAY",
		Delivered: "DELIVERED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Cooking:   "COOKING",
		Ready:     "READY",
		OnTheWay:  "ONTHEWAY",
		Delivered: "DELIVERED",
	}
}

// ParseStatus maps the wire name (case-insensitive) back to a Status.
func ParseStatus(s string) (Status, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getValidStatusStrings() {
		if name == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsActive reports whether an order in this status counts against the
// consumer's single active order.
func (s Status) IsActive() bool {
	return s != Delivered
}

// MarkReady moves Cooking to Ready.
func (s Status) MarkReady() (Status, error) {
	return s.advance(Cooking, Ready)
}

// PickUp moves Ready to OnTheWay.
func (s Status) PickUp() (Status, error) {
	return s.advance(Ready, OnTheWay)
}

// Deliver moves OnTheWay to Delivered.
func (s Status) Deliver() (Status, error) {
	return s.advance(OnTheWay, Delivered)
}

// ValidateCanHaveCourier checks the status against courier presence:
// OnTheWay and Delivered require a courier, Cooking and Ready forbid one.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	requiresCourier := s == OnTheWay || s == Delivered
	if courier && !requiresCourier {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && requiresCourier {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

func (s Status) advance(from, to Status) (Status, error) {
	if s != from {
		return Unknown, errs.NewInvalidTransitionError(s, to)
	}
	return to, nil
}
