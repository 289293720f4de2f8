// Package order implements the order aggregate for the restaurant backend.
// It contains the Order aggregate root, the OrderItem line entity, and the
// Status state machine that drives the fulfillment lifecycle
// (Pending -> Preparing -> Ready -> Served).
//
// The aggregate enforces the invariants of the order lifecycle engine:
// a non-empty item list, price snapshots fixed at order time, a total that
// equals the sum of item subtotals, and monotonic one-directional status
// transitions. All construction goes through validated factory functions.
package order
