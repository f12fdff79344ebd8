// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// Owned is implemented by every entity that belongs to exactly one user.
// The owner is set at creation time and never changes afterwards.
type Owned interface {
	// OwnerID returns the ID of the user that owns the entity.
	OwnerID() uuid.UUID
}
