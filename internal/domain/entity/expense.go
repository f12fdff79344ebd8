// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single expense record belonging to a user. Every
// expense references a category owned by the same user.
type Expense struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Date       time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(userID, categoryID uuid.UUID, amount decimal.Decimal, date time.Time, notes string) *Expense {
	now := time.Now().UTC()
	return &Expense{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Date:       date,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// OwnerID implements the Owned interface.
func (e *Expense) OwnerID() uuid.UUID {
	return e.UserID
}
