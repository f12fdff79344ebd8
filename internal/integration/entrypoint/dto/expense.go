// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	CategoryID string          `json:"category_id" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Date       time.Time       `json:"date" binding:"required"`
	Notes      string          `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	CategoryID string          `json:"category_id" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Date       time.Time       `json:"date" binding:"required"`
	Notes      string          `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:         expense.ID.String(),
		CategoryID: expense.CategoryID.String(),
		Amount:     expense.Amount,
		Date:       expense.Date,
		Notes:      expense.Notes,
		CreatedAt:  expense.CreatedAt,
		UpdatedAt:  expense.UpdatedAt,
	}
}

// ToExpenseListResponse converts domain expenses to an ExpenseListResponse.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{
		Expenses: responses,
	}
}
