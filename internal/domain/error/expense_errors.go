// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrNotExpenseOwner is returned when a user attempts to access an expense
	// owned by another user.
	ErrNotExpenseOwner = errors.New("not authorized to access expense")

	// ErrInvalidExpenseDate is returned when the expense date cannot be parsed.
	ErrInvalidExpenseDate = errors.New("invalid expense date")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	ErrCodeInvalidExpenseDate   ExpenseErrorCode = "EXP-010001"
	ErrCodeMissingExpenseFields ExpenseErrorCode = "EXP-010002"
	ErrCodeExpenseNotFound      ExpenseErrorCode = "EXP-020001"
	ErrCodeNotExpenseOwner      ExpenseErrorCode = "EXP-020002"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
