// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly spending budget for a category. At most one
// Budget exists for a given (user, category, month, year) tuple.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Month      int // 1-12
	Year       int
	Amount     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID, categoryID uuid.UUID, month, year int, amount decimal.Decimal) *Budget {
	now := time.Now().UTC()
	return &Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Month:      month,
		Year:       year,
		Amount:     amount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// OwnerID implements the Owned interface.
func (b *Budget) OwnerID() uuid.UUID {
	return b.UserID
}
