package budget

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeBudgetRepository is an in-memory BudgetRepository with the same unique
// key constraint the real store enforces.
type fakeBudgetRepository struct {
	mu      sync.Mutex
	budgets map[uuid.UUID]*entity.Budget

	// Test hooks for simulating races lost against another process. Each
	// fires on the next FindByKey call only.
	failNextFindByKey bool
	hideNextFindByKey bool
}

func newFakeBudgetRepository() *fakeBudgetRepository {
	return &fakeBudgetRepository{
		budgets: make(map[uuid.UUID]*entity.Budget),
	}
}

func (r *fakeBudgetRepository) Create(_ context.Context, budget *entity.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.budgets {
		if b.UserID == budget.UserID && b.CategoryID == budget.CategoryID &&
			b.Month == budget.Month && b.Year == budget.Year {
			return domainerror.ErrBudgetExists
		}
	}

	copied := *budget
	r.budgets[budget.ID] = &copied
	return nil
}

func (r *fakeBudgetRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	budget, ok := r.budgets[id]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	copied := *budget
	return &copied, nil
}

func (r *fakeBudgetRepository) FindByKey(_ context.Context, userID, categoryID uuid.UUID, month, year int) (*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failNextFindByKey {
		r.failNextFindByKey = false
		return nil, errors.New("connection reset")
	}
	if r.hideNextFindByKey {
		r.hideNextFindByKey = false
		return nil, nil
	}

	for _, b := range r.budgets {
		if b.UserID == userID && b.CategoryID == categoryID && b.Month == month && b.Year == year {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeBudgetRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var budgets []*entity.Budget
	for _, b := range r.budgets {
		if b.UserID == userID {
			copied := *b
			budgets = append(budgets, &copied)
		}
	}
	return budgets, nil
}

func (r *fakeBudgetRepository) Update(_ context.Context, budget *entity.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.budgets[budget.ID]; !ok {
		return domainerror.ErrBudgetNotFound
	}
	copied := *budget
	r.budgets[budget.ID] = &copied
	return nil
}

func (r *fakeBudgetRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.budgets, id)
	return nil
}

// addDirect inserts a record bypassing the unique check, as if another
// process had written it.
func (r *fakeBudgetRepository) addDirect(budget *entity.Budget) {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *budget
	r.budgets[budget.ID] = &copied
}

func (r *fakeBudgetRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.budgets)
}

// fakeCategoryRepository is an in-memory CategoryRepository.
type fakeCategoryRepository struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{
		categories: make(map[uuid.UUID]*entity.Category),
	}
}

func (r *fakeCategoryRepository) add(category *entity.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *category
	r.categories[category.ID] = &copied
}

func (r *fakeCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	r.add(category)
	return nil
}

func (r *fakeCategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

func (r *fakeCategoryRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var categories []*entity.Category
	for _, c := range r.categories {
		if c.UserID == userID {
			copied := *c
			categories = append(categories, &copied)
		}
	}
	return categories, nil
}

func (r *fakeCategoryRepository) FindByUserAndType(_ context.Context, userID uuid.UUID, categoryType entity.CategoryType) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var categories []*entity.Category
	for _, c := range r.categories {
		if c.UserID == userID && c.Type == categoryType {
			copied := *c
			categories = append(categories, &copied)
		}
	}
	return categories, nil
}

func (r *fakeCategoryRepository) ExistsByNameTypeAndUser(_ context.Context, name string, categoryType entity.CategoryType, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.UserID == userID && c.Name == name && c.Type == categoryType {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepository) Update(_ context.Context, category *entity.Category) error {
	r.add(category)
	return nil
}

func (r *fakeCategoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}
