// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	// Create creates a new income in the database.
	Create(ctx context.Context, income *entity.Income) error

	// FindByID retrieves an income by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error)

	// FindByUser retrieves all incomes for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error)

	// Update updates an existing income in the database.
	Update(ctx context.Context, income *entity.Income) error

	// Delete removes an income from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
