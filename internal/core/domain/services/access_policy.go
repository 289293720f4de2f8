package services

import (
	"fmt"

	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"
)

// Action identifies a role-gated operation of the lifecycle engine and the
// payment gate. The string value is the human-readable verb phrase used in
// access-denied messages.
type Action string

const (
	ActionCreateOrder     Action = "create orders"
	ActionStartCooking    Action = "start cooking orders"
	ActionMarkOrderReady  Action = "mark orders as ready"
	ActionMarkOrderServed Action = "serve orders"
	ActionProcessPayment  Action = "process payments"
)

// RoleNames is the process-wide read-only configuration of role names.
// The names are injected at startup instead of being scattered as literals
// through the business logic.
type RoleNames struct {
	Waiter  string
	Chef    string
	Cashier string
}

// DefaultRoleNames returns the conventional role names used when
// configuration does not override them.
func DefaultRoleNames() RoleNames {
	return RoleNames{
		Waiter:  "WAITER",
		Chef:    "CHEF",
		Cashier: "CASHIER",
	}
}

// AccessPolicy is a domain service that decides which role may perform which
// lifecycle action. Every transition is gated through the same policy table,
// so no operation can accidentally skip its authorization check.
//
// Policy table:
//
//	create orders          -> waiter
//	start cooking orders   -> cashier
//	mark orders as ready   -> chef
//	serve orders           -> waiter
//	process payments       -> cashier
type AccessPolicy struct {
	required map[Action]string
}

// NewAccessPolicy builds the policy table from the configured role names.
func NewAccessPolicy(names RoleNames) AccessPolicy {
	return AccessPolicy{
		required: map[Action]string{
			ActionCreateOrder:     names.Waiter,
			ActionStartCooking:    names.Cashier,
			ActionMarkOrderReady:  names.Chef,
			ActionMarkOrderServed: names.Waiter,
			ActionProcessPayment:  names.Cashier,
		},
	}
}

// RequiredRole returns the role name the policy demands for an action.
func (p AccessPolicy) RequiredRole(action Action) (string, error) {
	name, ok := p.required[action]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a gated action", action))
	}
	return name, nil
}

// Authorize checks that the user holds the role required for the action.
//
// Returns:
//   - nil when the user's role matches the required role
//   - AccessDeniedError when the user has no role or a different one
func (p AccessPolicy) Authorize(action Action, user *staff.User, requiredRole *staff.Role) error {
	name, err := p.RequiredRole(action)
	if err != nil {
		return err
	}

	if err = user.Validate(); err != nil {
		return err
	}
	if err = requiredRole.Validate(); err != nil {
		return err
	}

	if user.RoleID() == nil {
		return errs.NewAccessDeniedErrorWithCause(name, string(action),
			fmt.Errorf("user %s has no role assigned", user.ID()))
	}
	if !user.HasRole(requiredRole) {
		return errs.NewAccessDeniedError(name, string(action))
	}
	return nil
}
