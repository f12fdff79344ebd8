// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/authz"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for strict budget creation.
type CreateBudgetInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Month      int
	Year       int
	Amount     decimal.Decimal
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles strict budget creation: a second create for the
// same (user, category, month, year) key fails with a conflict instead of
// merging.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	locks        *KeyedMutex
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	locks *KeyedMutex,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		locks:        locks,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if err := validatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	// The referenced category must exist and belong to the caller
	if err := uc.authorizeCategory(ctx, input.CategoryID, input.UserID); err != nil {
		return nil, err
	}

	// Serialize the check-then-act sequence per key
	unlock := uc.locks.Lock(budgetKey(input.UserID, input.CategoryID, input.Month, input.Year))
	defer unlock()

	existing, err := uc.budgetRepo.FindByKey(ctx, input.UserID, input.CategoryID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to look up budget: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetExists,
			"a budget already exists for this category and period",
			domainerror.ErrBudgetExists,
		)
	}

	budget := entity.NewBudget(input.UserID, input.CategoryID, input.Month, input.Year, input.Amount)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		// The store's unique index is the backstop against races across
		// processes; its rejection is the authoritative conflict signal.
		if errors.Is(err, domainerror.ErrBudgetExists) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetExists,
				"a budget already exists for this category and period",
				domainerror.ErrBudgetExists,
			)
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{
		Budget: budget,
	}, nil
}

// authorizeCategory checks that the category exists and is owned by userID.
func (uc *CreateBudgetUseCase) authorizeCategory(ctx context.Context, categoryID, userID uuid.UUID) error {
	category, err := uc.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return fmt.Errorf("failed to find category: %w", err)
	}
	if authz.Authorize(category, userID) == authz.Deny {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeNotCategoryOwner,
			"not authorized to use this category",
			domainerror.ErrNotCategoryOwner,
		)
	}
	return nil
}

// validatePeriod checks the month and year range at the boundary of the
// reconciliation logic.
func validatePeriod(month, year int) error {
	if month < 1 || month > 12 || year < 1 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"month must be between 1 and 12 and year must be positive",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	return nil
}
