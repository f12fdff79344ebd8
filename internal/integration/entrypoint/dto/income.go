// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for income creation.
type CreateIncomeRequest struct {
	CategoryID string          `json:"category_id" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Date       time.Time       `json:"date" binding:"required"`
	Notes      string          `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// UpdateIncomeRequest represents the request body for income update.
type UpdateIncomeRequest struct {
	CategoryID string          `json:"category_id" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Date       time.Time       `json:"date" binding:"required"`
	Notes      string          `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// IncomeResponse represents a single income in API responses.
type IncomeResponse struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// IncomeListResponse represents the response for listing incomes.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:         income.ID.String(),
		CategoryID: income.CategoryID.String(),
		Amount:     income.Amount,
		Date:       income.Date,
		Notes:      income.Notes,
		CreatedAt:  income.CreatedAt,
		UpdatedAt:  income.UpdatedAt,
	}
}

// ToIncomeListResponse converts domain incomes to an IncomeListResponse.
func ToIncomeListResponse(incomes []*entity.Income) IncomeListResponse {
	responses := make([]IncomeResponse, len(incomes))
	for i, in := range incomes {
		responses[i] = ToIncomeResponse(in)
	}
	return IncomeListResponse{
		Incomes: responses,
	}
}
