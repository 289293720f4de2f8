// Package payment implements the payment aggregate of the payment gate.
// A payment settles exactly one order, snapshotting the order total at
// settlement time. The at-most-one-payment-per-order rule is enforced by
// upserting on the order reference; settling an existing pending record
// updates it in place.
package payment
