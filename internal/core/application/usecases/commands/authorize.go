package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// authorize resolves the acting user and the role the access policy requires
// for the action, then delegates the decision to the policy. Every role-gated
// command handler funnels through this helper so the checks stay uniform.
//
// A missing user surfaces as ObjectNotFoundError; a missing role (the
// directory was never seeded with it) surfaces as AccessDeniedError, since
// from the caller's perspective the permission simply cannot be granted.
func authorize(
	ctx context.Context,
	policy services.AccessPolicy,
	staffRepo ports.StaffRepository,
	action services.Action,
	userID kernel.UUID,
) error {
	requiredRole, err := policy.RequiredRole(action)
	if err != nil {
		return err
	}

	user, err := staffRepo.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	role, err := staffRepo.GetRoleByName(ctx, requiredRole)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewAccessDeniedErrorWithCause(requiredRole, string(action), err)
		}
		return err
	}

	return policy.Authorize(action, user, role)
}
