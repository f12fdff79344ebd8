// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database. The composite
// unique index backs the one-budget-per-period guarantee across processes.
type BudgetModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_budgets_key"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_key"`
	Month      int             `gorm:"not null;uniqueIndex:idx_budgets_key"`
	Year       int             `gorm:"not null;uniqueIndex:idx_budgets_key"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:         m.ID,
		UserID:     m.UserID,
		CategoryID: m.CategoryID,
		Month:      m.Month,
		Year:       m.Year,
		Amount:     m.Amount,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:         budget.ID,
		UserID:     budget.UserID,
		CategoryID: budget.CategoryID,
		Month:      budget.Month,
		Year:       budget.Year,
		Amount:     budget.Amount,
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
	}
}
