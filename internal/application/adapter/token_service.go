// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the validated claims of a bearer token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and validating bearer tokens.
type TokenService interface {
	// Issue produces a signed token for the given principal, valid for the
	// configured TTL from now.
	Issue(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// Validate verifies a token's signature and expiry and returns its claims.
	// It fails closed: any malformed, tampered or expired token yields an error.
	Validate(ctx context.Context, token string) (*TokenClaims, error)
}
