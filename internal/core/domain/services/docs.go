// Package services contains domain services that span multiple aggregates.
// AccessPolicy is the transition authorization table: it maps every
// role-gated lifecycle action to the role name allowed to perform it, so
// authorization is decided in one place instead of ad hoc per operation.
package services
