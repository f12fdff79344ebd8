// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// Create creates a new income in the database.
func (r *incomeRepository) Create(ctx context.Context, income *entity.Income) error {
	incomeModel := model.IncomeFromEntity(income)
	result := r.db.WithContext(ctx).Create(incomeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an income by its ID.
func (r *incomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncomeNotFound
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

// FindByUser retrieves all incomes for a given user, newest first.
func (r *incomeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error) {
	var incomeModels []model.IncomeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	incomes := make([]*entity.Income, len(incomeModels))
	for i, im := range incomeModels {
		incomes[i] = im.ToEntity()
	}
	return incomes, nil
}

// Update updates an existing income in the database.
func (r *incomeRepository) Update(ctx context.Context, income *entity.Income) error {
	incomeModel := model.IncomeFromEntity(income)
	result := r.db.WithContext(ctx).Save(incomeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an income from the database.
func (r *incomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.IncomeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
