// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/authz"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
	Name       *string
	Type       *entity.CategoryType
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	// Find the category
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

	// Ownership check before any mutation
	if authz.Authorize(category, input.UserID) == authz.Deny {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNotCategoryOwner,
			"not authorized to modify this category",
			domainerror.ErrNotCategoryOwner,
		)
	}

	name := category.Name
	if input.Name != nil {
		name = *input.Name
	}
	categoryType := category.Type
	if input.Type != nil {
		categoryType = *input.Type
	}

	// Validate updated fields
	if len(name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	if categoryType != entity.CategoryTypeExpense && categoryType != entity.CategoryTypeIncome {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'expense' or 'income'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	// Re-check uniqueness when the identifying fields change
	if name != category.Name || categoryType != category.Type {
		exists, err := uc.categoryRepo.ExistsByNameTypeAndUser(ctx, name, categoryType, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check category existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryExists,
				"a category with this name and type already exists",
				domainerror.ErrCategoryExists,
			)
		}
	}

	category.Name = name
	category.Type = categoryType
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
