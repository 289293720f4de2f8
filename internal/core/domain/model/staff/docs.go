// Package staff holds the user/role directory entities consumed by the
// authorization policy. Full identity management lives outside the system;
// the core only resolves users and roles to decide who may perform which
// lifecycle transition.
package staff
