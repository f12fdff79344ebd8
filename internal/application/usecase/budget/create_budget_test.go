package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestCreateBudget_Success(t *testing.T) {
	userID, category, budgetRepo, categoryRepo := newBudgetFixture(t)
	uc := NewCreateBudgetUseCase(budgetRepo, categoryRepo, NewKeyedMutex())

	output, err := uc.Execute(context.Background(), CreateBudgetInput{
		UserID:     userID,
		CategoryID: category.ID,
		Month:      7,
		Year:       2025,
		Amount:     decimal.NewFromInt(1000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Budget.UserID != userID {
		t.Errorf("expected budget owner %s, got %s", userID, output.Budget.UserID)
	}
	if budgetRepo.count() != 1 {
		t.Errorf("expected 1 budget, got %d", budgetRepo.count())
	}
}

func TestCreateBudget_SecondCreateConflicts(t *testing.T) {
	userID, category, budgetRepo, categoryRepo := newBudgetFixture(t)
	uc := NewCreateBudgetUseCase(budgetRepo, categoryRepo, NewKeyedMutex())

	input := CreateBudgetInput{
		UserID:     userID,
		CategoryID: category.ID,
		Month:      7,
		Year:       2025,
		Amount:     decimal.NewFromInt(100),
	}
	first, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error on first create: %v", err)
	}

	input.Amount = decimal.NewFromInt(200)
	_, err = uc.Execute(context.Background(), input)
	if !errors.Is(err, domainerror.ErrBudgetExists) {
		t.Fatalf("expected ErrBudgetExists, got %v", err)
	}

	if budgetRepo.count() != 1 {
		t.Errorf("expected the store to still hold 1 budget, got %d", budgetRepo.count())
	}
	stored, err := budgetRepo.FindByID(context.Background(), first.Budget.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stored.Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected first amount 100 to survive, got %s", stored.Amount)
	}
}

func TestCreateBudget_StoreConstraintIsBackstop(t *testing.T) {
	userID, category, budgetRepo, categoryRepo := newBudgetFixture(t)
	uc := NewCreateBudgetUseCase(budgetRepo, categoryRepo, NewKeyedMutex())

	// Simulate another process winning the race: the record lands in the
	// store after our existence check would have passed.
	budgetRepo.failNextFindByKey = true
	_, err := uc.Execute(context.Background(), CreateBudgetInput{
		UserID:     userID,
		CategoryID: category.ID,
		Month:      7,
		Year:       2025,
		Amount:     decimal.NewFromInt(100),
	})
	if err == nil {
		t.Fatal("expected an error when the lookup fails")
	}

	budgetRepo.addDirect(entity.NewBudget(userID, category.ID, 7, 2025, decimal.NewFromInt(100)))
	budgetRepo.hideNextFindByKey = true
	_, err = uc.Execute(context.Background(), CreateBudgetInput{
		UserID:     userID,
		CategoryID: category.ID,
		Month:      7,
		Year:       2025,
		Amount:     decimal.NewFromInt(200),
	})
	if !errors.Is(err, domainerror.ErrBudgetExists) {
		t.Fatalf("expected ErrBudgetExists from the store constraint, got %v", err)
	}
	if budgetRepo.count() != 1 {
		t.Errorf("expected 1 budget, got %d", budgetRepo.count())
	}
}

func TestCreateBudget_RejectsForeignCategory(t *testing.T) {
	userID, _, budgetRepo, categoryRepo := newBudgetFixture(t)

	otherCategory := entity.NewCategory(uuid.New(), "Rent", entity.CategoryTypeExpense)
	categoryRepo.add(otherCategory)

	uc := NewCreateBudgetUseCase(budgetRepo, categoryRepo, NewKeyedMutex())

	_, err := uc.Execute(context.Background(), CreateBudgetInput{
		UserID:     userID,
		CategoryID: otherCategory.ID,
		Month:      7,
		Year:       2025,
		Amount:     decimal.NewFromInt(100),
	})
	if !errors.Is(err, domainerror.ErrNotCategoryOwner) {
		t.Errorf("expected ErrNotCategoryOwner, got %v", err)
	}
}

func TestCreateBudget_RejectsInvalidPeriod(t *testing.T) {
	userID, category, budgetRepo, categoryRepo := newBudgetFixture(t)
	uc := NewCreateBudgetUseCase(budgetRepo, categoryRepo, NewKeyedMutex())

	_, err := uc.Execute(context.Background(), CreateBudgetInput{
		UserID:     userID,
		CategoryID: category.ID,
		Month:      13,
		Year:       2025,
		Amount:     decimal.NewFromInt(100),
	})
	if !errors.Is(err, domainerror.ErrInvalidBudgetPeriod) {
		t.Errorf("expected ErrInvalidBudgetPeriod, got %v", err)
	}
}
