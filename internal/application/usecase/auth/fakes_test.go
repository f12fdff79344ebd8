package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeUserRepository is an in-memory UserRepository keyed by email.
type fakeUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return domainerror.ErrEmailAlreadyExists
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// fakeCategoryRepository records created categories so seeding can be
// asserted.
type fakeCategoryRepository struct {
	mu         sync.Mutex
	categories []*entity.Category
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{}
}

func (r *fakeCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *category
	r.categories = append(r.categories, &copied)
	return nil
}

func (r *fakeCategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
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

	for i, c := range r.categories {
		if c.ID == category.ID {
			copied := *category
			r.categories[i] = &copied
			return nil
		}
	}
	return domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrCategoryNotFound
}

// fakePasswordService hashes with a reversible marker instead of bcrypt so
// tests stay fast.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

// fakeTokenService issues predictable tokens.
type fakeTokenService struct {
	issued int
}

func (s *fakeTokenService) Issue(_ context.Context, userID uuid.UUID, email string) (string, error) {
	s.issued++
	return fmt.Sprintf("token-%s-%s", userID, email), nil
}

func (s *fakeTokenService) Validate(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}
