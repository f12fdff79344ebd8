// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Income domain errors.
var (
	// ErrIncomeNotFound is returned when an income is not found in the system.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrNotIncomeOwner is returned when a user attempts to access an income
	// owned by another user.
	ErrNotIncomeOwner = errors.New("not authorized to access income")

	// ErrInvalidIncomeDate is returned when the income date cannot be parsed.
	ErrInvalidIncomeDate = errors.New("invalid income date")
)

// IncomeErrorCode defines error codes for income errors.
// Format: INC-XXYYYY where XX is category and YYYY is specific error.
type IncomeErrorCode string

const (
	ErrCodeInvalidIncomeDate   IncomeErrorCode = "INC-010001"
	ErrCodeMissingIncomeFields IncomeErrorCode = "INC-010002"
	ErrCodeIncomeNotFound      IncomeErrorCode = "INC-020001"
	ErrCodeNotIncomeOwner      IncomeErrorCode = "INC-020002"
)

// IncomeError represents an income error with code and message.
type IncomeError struct {
	Code    IncomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IncomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IncomeError) Unwrap() error {
	return e.Err
}

// NewIncomeError creates a new IncomeError with the given code and message.
func NewIncomeError(code IncomeErrorCode, message string, err error) *IncomeError {
	return &IncomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
