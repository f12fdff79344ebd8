// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database. It returns
	// domainerror.ErrBudgetExists when the store's unique constraint on
	// (user, category, month, year) rejects the row.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByKey retrieves the budget for an exact (user, category, month, year)
	// key. It returns (nil, nil) when no budget exists for the key.
	FindByKey(ctx context.Context, userID, categoryID uuid.UUID, month, year int) (*entity.Budget, error)

	// FindByUser retrieves all budgets for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
