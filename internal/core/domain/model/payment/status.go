package payment

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the settlement state of a payment.
//
// State transitions:
//
//	Pending ──> Paid
//
// Paid is final. A payment row can exist in Pending state when settlement
// was started but not confirmed; settling it moves it to Paid in place.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending indicates a payment record that has not been confirmed yet.
	Pending

	// Paid indicates the payment was confirmed by a cashier.
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Pending: "Pending",
		Paid:    "Paid",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending: "Pending",
		Paid:    "Paid",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a payment status from its persisted string form.
// The match is case-sensitive and exact.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("payment status is invalid", fmt.Errorf("%q is not a valid status", s))
}
