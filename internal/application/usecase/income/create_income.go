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

// CreateIncomeInput represents the input for income creation.
type CreateIncomeInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Date       time.Time
	Notes      string
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income *entity.Income
}

// CreateIncomeUseCase handles income creation logic.
type CreateIncomeUseCase struct {
	incomeRepo  adapter.IncomeRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.IncomeRepository, categoryRepo adapter.CategoryRepository) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo:  incomeRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the income creation.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
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

	income := entity.NewIncome(input.UserID, input.CategoryID, input.Amount, input.Date, input.Notes)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	return &CreateIncomeOutput{
		Income: income,
	}, nil
}
