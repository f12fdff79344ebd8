// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/authz"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// GetBudgetInput represents the input for getting a budget.
type GetBudgetInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
}

// GetBudgetOutput represents the output of getting a budget.
type GetBudgetOutput struct {
	Budget *entity.Budget
}

// GetBudgetUseCase handles getting a budget by ID.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget retrieval.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if authz.Authorize(budget, input.UserID) == authz.Deny {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNotBudgetOwner,
			"not authorized to access this budget",
			domainerror.ErrNotBudgetOwner,
		)
	}

	return &GetBudgetOutput{
		Budget: budget,
	}, nil
}
