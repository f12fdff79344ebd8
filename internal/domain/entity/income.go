// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income represents a single income record belonging to a user.
type Income struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Date       time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(userID, categoryID uuid.UUID, amount decimal.Decimal, date time.Time, notes string) *Income {
	now := time.Now().UTC()
	return &Income{
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
func (i *Income) OwnerID() uuid.UUID {
	return i.UserID
}
