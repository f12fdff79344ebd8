// Package expense contains expense-related use cases.
package expense

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

// GetExpenseInput represents the input for getting an expense.
type GetExpenseInput struct {
	ExpenseID uuid.UUID
	UserID    uuid.UUID
}

// GetExpenseOutput represents the output of getting an expense.
type GetExpenseOutput struct {
	Expense *entity.Expense
}

// GetExpenseUseCase handles getting an expense by ID.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense retrieval.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, input GetExpenseInput) (*GetExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	if authz.Authorize(expense, input.UserID) == authz.Deny {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNotExpenseOwner,
			"not authorized to access this expense",
			domainerror.ErrNotExpenseOwner,
		)
	}

	return &GetExpenseOutput{
		Expense: expense,
	}, nil
}
