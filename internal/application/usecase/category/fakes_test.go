package category

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeCategoryRepository is an in-memory CategoryRepository.
type fakeCategoryRepository struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.UserID == category.UserID && c.Name == category.Name && c.Type == category.Type {
			return domainerror.ErrCategoryExists
		}
	}
	copied := *category
	r.categories[category.ID] = &copied
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

	var result []*entity.Category
	for _, c := range r.categories {
		if c.UserID == userID {
			copied := *c
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeCategoryRepository) FindByUserAndType(_ context.Context, userID uuid.UUID, categoryType entity.CategoryType) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entity.Category
	for _, c := range r.categories {
		if c.UserID == userID && c.Type == categoryType {
			copied := *c
			result = append(result, &copied)
		}
	}
	return result, nil
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
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[category.ID]; !ok {
		return domainerror.ErrCategoryNotFound
	}
	copied := *category
	r.categories[category.ID] = &copied
	return nil
}

func (r *fakeCategoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return domainerror.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepository) add(category *entity.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *category
	r.categories[category.ID] = &copied
}
