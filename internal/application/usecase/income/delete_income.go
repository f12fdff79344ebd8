// Package income contains income-related use cases.
package income

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/authz"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteIncomeInput represents the input for income deletion.
type DeleteIncomeInput struct {
	IncomeID uuid.UUID
	UserID    uuid.UUID
}

// DeleteIncomeUseCase handles income deletion logic.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income deletion.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) error {
	income, err := uc.incomeRepo.FindByID(ctx, input.IncomeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrIncomeNotFound) {
			return domainerror.NewIncomeError(
				domainerror.ErrCodeIncomeNotFound,
				"income not found",
				domainerror.ErrIncomeNotFound,
			)
		}
		return fmt.Errorf("failed to find income: %w", err)
	}

	if authz.Authorize(income, input.UserID) == authz.Deny {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeNotIncomeOwner,
			"not authorized to delete this income",
			domainerror.ErrNotIncomeOwner,
		)
	}

	if err := uc.incomeRepo.Delete(ctx, input.IncomeID); err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}

	return nil
}
