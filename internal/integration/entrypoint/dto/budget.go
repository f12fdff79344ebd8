// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	CategoryID string          `json:"category_id" binding:"required,uuid"`
	Month      int             `json:"month" binding:"required,min=1,max=12"`
	Year       int             `json:"year" binding:"required,min=1"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// UpsertBudgetRequest represents the request body for budget reconciliation.
type UpsertBudgetRequest struct {
	CategoryID string          `json:"category_id" binding:"required,uuid"`
	Month      int             `json:"month" binding:"required,min=1,max=12"`
	Year       int             `json:"year" binding:"required,min=1"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"category_id"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         budget.ID.String(),
		CategoryID: budget.CategoryID.String(),
		Month:      budget.Month,
		Year:       budget.Year,
		Amount:     budget.Amount,
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
	}
}

// ToBudgetListResponse converts domain budgets to a BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{
		Budgets: responses,
	}
}
