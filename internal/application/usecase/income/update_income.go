// Package income contains income-related use cases.
package income

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

// UpdateIncomeInput represents the input for income update.
type UpdateIncomeInput struct {
	IncomeID  uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Date       time.Time
	Notes      string
}

// UpdateIncomeOutput represents the output of income update.
type UpdateIncomeOutput struct {
	Income *entity.Income
}

// UpdateIncomeUseCase handles income update logic.
type UpdateIncomeUseCase struct {
	incomeRepo  adapter.IncomeRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.IncomeRepository, categoryRepo adapter.CategoryRepository) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo:  incomeRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the income update.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	// Find the income
	income, err := uc.incomeRepo.FindByID(ctx, input.IncomeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrIncomeNotFound) {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeIncomeNotFound,
				"income not found",
				domainerror.ErrIncomeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find income: %w", err)
	}

	// Ownership check before any mutation
	if authz.Authorize(income, input.UserID) == authz.Deny {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeNotIncomeOwner,
			"not authorized to modify this income",
			domainerror.ErrNotIncomeOwner,
		)
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

	income.CategoryID = input.CategoryID
	income.Amount = input.Amount
	income.Date = input.Date
	income.Notes = input.Notes
	income.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to update income: %w", err)
	}

	return &UpdateIncomeOutput{
		Income: income,
	}, nil
}
