// Package queries contains read-only operations for retrieving system state.
// Implements the query side of the CQRS architecture: handlers read the
// database directly with raw SQL, bypassing the domain model, and return
// flat response structures shaped for presentation.
package queries
