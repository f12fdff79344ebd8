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

func newBudgetFixture(t *testing.T) (uuid.UUID, *entity.Category, *fakeBudgetRepository, *fakeCategoryRepository) {
	t.Helper()

	userID := uuid.New()
	category := entity.NewCategory(userID, "Food", entity.CategoryTypeExpense)

	budgetRepo := newFakeBudgetRepository()
	categoryRepo := newFakeCategoryRepository()
	categoryRepo.add(category)

	return userID, category, budgetRepo, categoryRepo
}

func TestUpsertBudget_CreatesWhenAbsent(t *testing.T) {
	userID, category, budgetRepo, categoryRepo := newBudgetFixture(t)
	uc := NewUpsertBudgetUseCase(budgetRepo, categoryRepo, NewKeyedMutex())

	output, err := uc.Execute(context.Background(), UpsertBudgetInput{
		UserID:     userID,
		CategoryID: category.ID,
		Month:      7,
		Year:       2025,
		Amount:     decimal.NewFromInt(1000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if budgetRepo.count() != 1 {
		t.Errorf("expected 1 budget, got %d", budgetRepo.count())
	}
	if !output.Budget.Amount.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected amount 1000, got %s", output.Budget.Amount)
	}
}

func TestUpsertBudget_IsIdempotent(t *testing.T) {
	userID, category, budgetRepo, categoryRepo := newBudgetFixture(t)
	uc := NewUpsertBudgetUseCase(budgetRepo, categoryRepo, NewKeyedMutex())

	input := UpsertBudgetInput{
		UserID:     userID,
		CategoryID: category.ID,
		Month:      7,
		Year:       2025,
		Amount:     decimal.NewFromInt(100),
	}

	first, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error on first upsert: %v", err)
	}
	second, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error on second upsert: %v", err)
	}

	if budgetRepo.count() != 1 {
		t.Errorf("expected exactly 1 budget after repeated upserts, got %d", budgetRepo.count())
	}
	if first.Budget.ID != second.Budget.ID {
		t.Error("expected repeated upserts to converge to the same record")
	}
	if !second.Budget.Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected amount 100, got %s", second.Budget.Amount)
	}
}

func TestUpsertBudget_OverwritesAmount(t *testing.T) {
	userID, category, budgetRepo, categoryRepo := newBudgetFixture(t)
	uc := NewUpsertBudgetUseCase(budgetRepo, categoryRepo, NewKeyedMutex())

	input := UpsertBudgetInput{
		UserID:     userID,
		CategoryID: category.ID,
		Month:      7,
		Year:       2025,
		Amount:     decimal.NewFromInt(1000),
	}
	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input.Amount = decimal.NewFromInt(1500)
	output, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if budgetRepo.count() != 1 {
		t.Errorf("expected a single budget record, got %d", budgetRepo.count())
	}

	stored, err := budgetRepo.FindByID(context.Background(), output.Budget.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stored.Amount.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("expected stored amount 1500, got %s", stored.Amount)
	}
}

func TestUpsertBudget_ReconcilesAfterLostRace(t *testing.T) {
	userID, category, budgetRepo, categoryRepo := newBudgetFixture(t)
	uc := NewUpsertBudgetUseCase(budgetRepo, categoryRepo, NewKeyedMutex())

	// Another process inserts the record after our existence check would
	// have seen nothing, so the create trips the unique constraint.
	winner := entity.NewBudget(userID, category.ID, 7, 2025, decimal.NewFromInt(100))
	budgetRepo.addDirect(winner)
	budgetRepo.hideNextFindByKey = true

	output, err := uc.Execute(context.Background(), UpsertBudgetInput{
		UserID:     userID,
		CategoryID: category.ID,
		Month:      7,
		Year:       2025,
		Amount:     decimal.NewFromInt(250),
	})
	if err != nil {
		t.Fatalf("expected the upsert to reconcile onto the existing record, got %v", err)
	}

	if budgetRepo.count() != 1 {
		t.Errorf("expected a single budget record, got %d", budgetRepo.count())
	}
	if output.Budget.ID != winner.ID {
		t.Error("expected the upsert to converge to the record that won the race")
	}
	stored, err := budgetRepo.FindByID(context.Background(), winner.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stored.Amount.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected stored amount 250, got %s", stored.Amount)
	}
}

func TestUpsertBudget_DistinctPeriodsAreDistinctRecords(t *testing.T) {
	userID, category, budgetRepo, categoryRepo := newBudgetFixture(t)
	uc := NewUpsertBudgetUseCase(budgetRepo, categoryRepo, NewKeyedMutex())

	for _, month := range []int{7, 8} {
		_, err := uc.Execute(context.Background(), UpsertBudgetInput{
			UserID:     userID,
			CategoryID: category.ID,
			Month:      month,
			Year:       2025,
			Amount:     decimal.NewFromInt(100),
		})
		if err != nil {
			t.Fatalf("unexpected error for month %d: %v", month, err)
		}
	}

	if budgetRepo.count() != 2 {
		t.Errorf("expected 2 budgets for distinct periods, got %d", budgetRepo.count())
	}
}

func TestUpsertBudget_RejectsForeignCategory(t *testing.T) {
	userID, _, budgetRepo, categoryRepo := newBudgetFixture(t)

	otherCategory := entity.NewCategory(uuid.New(), "Food", entity.CategoryTypeExpense)
	categoryRepo.add(otherCategory)

	uc := NewUpsertBudgetUseCase(budgetRepo, categoryRepo, NewKeyedMutex())

	_, err := uc.Execute(context.Background(), UpsertBudgetInput{
		UserID:     userID,
		CategoryID: otherCategory.ID,
		Month:      7,
		Year:       2025,
		Amount:     decimal.NewFromInt(100),
	})
	if !errors.Is(err, domainerror.ErrNotCategoryOwner) {
		t.Errorf("expected ErrNotCategoryOwner, got %v", err)
	}
	if budgetRepo.count() != 0 {
		t.Errorf("expected no budget to be persisted, got %d", budgetRepo.count())
	}
}

func TestUpsertBudget_RejectsUnknownCategory(t *testing.T) {
	userID, _, budgetRepo, categoryRepo := newBudgetFixture(t)
	uc := NewUpsertBudgetUseCase(budgetRepo, categoryRepo, NewKeyedMutex())

	_, err := uc.Execute(context.Background(), UpsertBudgetInput{
		UserID:     userID,
		CategoryID: uuid.New(),
		Month:      7,
		Year:       2025,
		Amount:     decimal.NewFromInt(100),
	})
	if !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestUpsertBudget_RejectsInvalidPeriod(t *testing.T) {
	userID, category, budgetRepo, categoryRepo := newBudgetFixture(t)
	uc := NewUpsertBudgetUseCase(budgetRepo, categoryRepo, NewKeyedMutex())

	tests := []struct {
		name  string
		month int
		year  int
	}{
		{"month zero", 0, 2025},
		{"month thirteen", 13, 2025},
		{"negative month", -1, 2025},
		{"year zero", 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), UpsertBudgetInput{
				UserID:     userID,
				CategoryID: category.ID,
				Month:      tt.month,
				Year:       tt.year,
				Amount:     decimal.NewFromInt(100),
			})
			if !errors.Is(err, domainerror.ErrInvalidBudgetPeriod) {
				t.Errorf("expected ErrInvalidBudgetPeriod, got %v", err)
			}
		})
	}
}
