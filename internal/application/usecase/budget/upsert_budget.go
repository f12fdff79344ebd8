// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/authz"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpsertBudgetInput represents the input for budget reconciliation.
type UpsertBudgetInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Month      int
	Year       int
	Amount     decimal.Decimal
}

// UpsertBudgetOutput represents the output of budget reconciliation.
type UpsertBudgetOutput struct {
	Budget *entity.Budget
}

// UpsertBudgetUseCase reconciles a budget onto its (user, category, month,
// year) key: an existing record has its amount overwritten, an absent one is
// created. Repeated calls with the same input converge to a single stored
// record.
type UpsertBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	locks        *KeyedMutex
}

// NewUpsertBudgetUseCase creates a new UpsertBudgetUseCase instance.
func NewUpsertBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	locks *KeyedMutex,
) *UpsertBudgetUseCase {
	return &UpsertBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		locks:        locks,
	}
}

// Execute performs the budget reconciliation.
func (uc *UpsertBudgetUseCase) Execute(ctx context.Context, input UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	if err := validatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	// The referenced category must exist and belong to the caller
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if authz.Authorize(category, input.UserID) == authz.Deny {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNotCategoryOwner,
			"not authorized to use this category",
			domainerror.ErrNotCategoryOwner,
		)
	}

	// Serialize the check-then-act sequence per key
	unlock := uc.locks.Lock(budgetKey(input.UserID, input.CategoryID, input.Month, input.Year))
	defer unlock()

	existing, err := uc.budgetRepo.FindByKey(ctx, input.UserID, input.CategoryID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to look up budget: %w", err)
	}

	if existing != nil {
		return uc.overwrite(ctx, existing, input)
	}

	budget := entity.NewBudget(input.UserID, input.CategoryID, input.Month, input.Year, input.Amount)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		// The unique index caught a record another process inserted after
		// the lookup above. Reconciliation still converges: re-read the key
		// and overwrite that record.
		if errors.Is(err, domainerror.ErrBudgetExists) {
			existing, findErr := uc.budgetRepo.FindByKey(ctx, input.UserID, input.CategoryID, input.Month, input.Year)
			if findErr != nil {
				return nil, fmt.Errorf("failed to look up budget after conflict: %w", findErr)
			}
			if existing != nil {
				return uc.overwrite(ctx, existing, input)
			}
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &UpsertBudgetOutput{
		Budget: budget,
	}, nil
}

// overwrite reaffirms the key fields on an existing record and overwrites
// its amount.
func (uc *UpsertBudgetUseCase) overwrite(ctx context.Context, existing *entity.Budget, input UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	existing.UserID = input.UserID
	existing.CategoryID = input.CategoryID
	existing.Month = input.Month
	existing.Year = input.Year
	existing.Amount = input.Amount
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	return &UpsertBudgetOutput{Budget: existing}, nil
}
