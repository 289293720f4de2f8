package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct kitchen workflow.
//
// State transitions:
//
//	Pending ──> Preparing ──> Ready ──> Served
//
// Cancelled is a side branch that is never entered through a transition
// implemented here; it only guards payment processing. Transitions are
// monotonic and one-directional.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting for the kitchen to start cooking.
	Pending

	// Preparing indicates the kitchen is cooking the order.
	Preparing

	// Ready indicates the order is cooked and waiting to be served.
	Ready

	// Served indicates the order has been delivered to the table.
	// This is a final state with no further transitions allowed.
	Served

	// Cancelled indicates the order was called off. It is settable only
	// from outside the lifecycle engine and blocks payment processing.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Preparing: "Preparing",
		Ready:     "Ready",
		Served:    "Served",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Preparing: "Preparing",
		Ready:     "Ready",
		Served:    "Served",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Preparing, Ready, Served, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its persisted string form.
// The match is case-sensitive and exact.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// requireStatus builds the conflict error for a transition attempted from the
// wrong status. The message names the required and the current status.
func (s Status) requireStatus(required Status) error {
	return errs.NewStateConflictError(
		"order",
		fmt.Sprintf("must be in %s status, current status: %s", required, s),
	)
}

// StartCooking transitions the status to Preparing.
//
// Valid transitions:
//   - Pending -> Preparing
//
// Returns:
//   - (Preparing, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) StartCooking() (Status, error) {
	if s != Pending {
		return 0, s.requireStatus(Pending)
	}
	return Preparing, nil
}

// MarkReady transitions the status to Ready.
//
// Valid transitions:
//   - Preparing -> Ready
//
// Payment gating (a Paid payment must exist) is enforced by the caller;
// the status machine only guards the order's own state.
func (s Status) MarkReady() (Status, error) {
	if s != Preparing {
		return 0, s.requireStatus(Preparing)
	}
	return Ready, nil
}

// MarkServed transitions the status to Served.
//
// Valid transitions:
//   - Ready -> Served
//
// Served is a final state with no further transitions possible.
func (s Status) MarkServed() (Status, error) {
	if s != Ready {
		return 0, s.requireStatus(Ready)
	}
	return Served, nil
}
