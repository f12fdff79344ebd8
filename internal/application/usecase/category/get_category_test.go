package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestGetCategory_ReturnsOwnedCategory(t *testing.T) {
	repo := newFakeCategoryRepository()
	userID := uuid.New()
	category := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense)
	repo.add(category)

	uc := NewGetCategoryUseCase(repo)
	output, err := uc.Execute(context.Background(), GetCategoryInput{
		CategoryID: category.ID,
		UserID:     userID,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Category.ID != category.ID {
		t.Errorf("category ID = %v, want %v", output.Category.ID, category.ID)
	}
	if output.Category.Name != "Groceries" {
		t.Errorf("category name = %q, want %q", output.Category.Name, "Groceries")
	}
}

func TestGetCategory_NotFound(t *testing.T) {
	uc := NewGetCategoryUseCase(newFakeCategoryRepository())

	_, err := uc.Execute(context.Background(), GetCategoryInput{
		CategoryID: uuid.New(),
		UserID:     uuid.New(),
	})
	if !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Fatalf("Execute() error = %v, want ErrCategoryNotFound", err)
	}
}

func TestGetCategory_DeniesForeignCategory(t *testing.T) {
	repo := newFakeCategoryRepository()
	owner := uuid.New()
	category := entity.NewCategory(owner, "Travel", entity.CategoryTypeExpense)
	repo.add(category)

	uc := NewGetCategoryUseCase(repo)
	_, err := uc.Execute(context.Background(), GetCategoryInput{
		CategoryID: category.ID,
		UserID:     uuid.New(),
	})
	if !errors.Is(err, domainerror.ErrNotCategoryOwner) {
		t.Fatalf("Execute() error = %v, want ErrNotCategoryOwner", err)
	}
}
