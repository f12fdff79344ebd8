// Package authz implements the ownership check applied to every owned
// resource before it is read or mutated.
package authz

import (
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// Decision is the outcome of an ownership check.
type Decision int

const (
	// Deny means the principal does not own the resource.
	Deny Decision = iota
	// Allow means the principal owns the resource.
	Allow
)

// Authorize decides whether principalID may access resource. Allow is
// returned only when the resource's owner is exactly the principal; there is
// no role hierarchy, delegation or admin override.
func Authorize(resource entity.Owned, principalID uuid.UUID) Decision {
	if resource == nil || principalID == uuid.Nil {
		return Deny
	}
	if resource.OwnerID() == principalID {
		return Allow
	}
	return Deny
}

// IsOwner is a convenience wrapper around Authorize for use in boolean
// contexts.
func IsOwner(resource entity.Owned, principalID uuid.UUID) bool {
	return Authorize(resource, principalID) == Allow
}
