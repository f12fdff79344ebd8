// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetExists is returned when a budget already exists for the same
	// (user, category, month, year) key.
	ErrBudgetExists = errors.New("budget already exists for this category and period")

	// ErrInvalidBudgetPeriod is returned when the budget month or year is out of range.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrNotBudgetOwner is returned when a user attempts to access a budget
	// owned by another user.
	ErrNotBudgetOwner = errors.New("not authorized to access budget")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	ErrCodeInvalidBudgetPeriod BudgetErrorCode = "BUD-010001"
	ErrCodeMissingBudgetFields BudgetErrorCode = "BUD-010002"
	ErrCodeBudgetNotFound      BudgetErrorCode = "BUD-020001"
	ErrCodeBudgetExists        BudgetErrorCode = "BUD-020002"
	ErrCodeNotBudgetOwner      BudgetErrorCode = "BUD-020003"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
