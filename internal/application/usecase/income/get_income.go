// Package income contains income-related use cases.
package income

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

// GetIncomeInput represents the input for getting an income.
type GetIncomeInput struct {
	IncomeID uuid.UUID
	UserID    uuid.UUID
}

// GetIncomeOutput represents the output of getting an income.
type GetIncomeOutput struct {
	Income *entity.Income
}

// GetIncomeUseCase handles getting an income by ID.
type GetIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewGetIncomeUseCase creates a new GetIncomeUseCase instance.
func NewGetIncomeUseCase(incomeRepo adapter.IncomeRepository) *GetIncomeUseCase {
	return &GetIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income retrieval.
func (uc *GetIncomeUseCase) Execute(ctx context.Context, input GetIncomeInput) (*GetIncomeOutput, error) {
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

	if authz.Authorize(income, input.UserID) == authz.Deny {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeNotIncomeOwner,
			"not authorized to access this income",
			domainerror.ErrNotIncomeOwner,
		)
	}

	return &GetIncomeOutput{
		Income: income,
	}, nil
}
