// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// ParseCategoryType parses a category type string. The second return value is
// false when the string is not a recognized type.
func ParseCategoryType(s string) (CategoryType, bool) {
	switch CategoryType(s) {
	case CategoryTypeExpense, CategoryTypeIncome:
		return CategoryType(s), true
	}
	return "", false
}

// Category represents an expense or income category in the Expense Tracker
// system. (Name, Type) is unique per owner.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      CategoryType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// OwnerID implements the Owned interface.
func (c *Category) OwnerID() uuid.UUID {
	return c.UserID
}
