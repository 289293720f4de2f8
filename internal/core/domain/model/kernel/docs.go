// Package kernel holds the shared primitives of the domain model.
//
// It provides the UUID value object used as the identifier of every
// aggregate (orders, menu items, payments, users, roles) and the
// ConstructorGuard helper that keeps zero-value domain objects from passing
// validation. Both are immutable and safe for concurrent use.
package kernel
