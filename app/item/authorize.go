package item

import (
	"context"

	"freezer/domain"
	"freezer/pkg/httperror"
)

// callerID extracts the authenticated user id placed in the request context
// by the security-headers middleware. Empty when upstream authentication
// produced no usable identity.
func callerID(ctx context.Context) string {
	id, _ := ctx.Value("UserID").(string)
	return id
}

// authorizeOwner enforces that only the owning user may touch an item.
// Shared by the update and delete paths; list access is owner-scoped at the
// query instead. Forbidden is reported with status 401, not 403, for wire
// compatibility with the existing frontend.
func authorizeOwner(it domain.Item, caller string) error {
	if caller == "" {
		return httperror.Unauthorized(
			"item.authorize.caller_unresolved",
			"User not found",
			nil,
		)
	}

	if it.OwnerID != caller {
		return httperror.Unauthorized(
			"item.authorize.forbidden",
			"User not authorized",
			nil,
		)
	}

	return nil
}
