// Package category contains category-related use cases.
package category

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

// GetCategoryInput represents the input for getting a category.
type GetCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
}

// GetCategoryOutput represents the output of getting a category.
type GetCategoryOutput struct {
	Category *entity.Category
}

// GetCategoryUseCase handles getting a category by ID.
type GetCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewGetCategoryUseCase creates a new GetCategoryUseCase instance.
func NewGetCategoryUseCase(categoryRepo adapter.CategoryRepository) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category retrieval.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, input GetCategoryInput) (*GetCategoryOutput, error) {
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
			"not authorized to access this category",
			domainerror.ErrNotCategoryOwner,
		)
	}

	return &GetCategoryOutput{
		Category: category,
	}, nil
}
