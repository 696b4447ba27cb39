// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the store.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidPeriod is returned when a summary period keyword is unknown or
	// a custom period is missing one of its bounds.
	ErrInvalidPeriod = errors.New("invalid period or missing parameters")

	// ErrInvalidDate is returned when a date string cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidRecurrence is returned when the recurrence value is not one of
	// none, daily, weekly, monthly.
	ErrInvalidRecurrence = errors.New("invalid recurrence")

	// ErrInvalidAmount is returned when an amount value cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseNotFound   ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidPeriod     ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidDate       ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidRecurrence ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidAmount     ExpenseErrorCode = "EXP-010005"
	ErrCodeMissingFields     ExpenseErrorCode = "EXP-010006"

	// Infrastructure errors (02XXXX)
	ErrCodeStoreFailure ExpenseErrorCode = "EXP-020001"
	ErrCodeRateLimited  ExpenseErrorCode = "EXP-020002"
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
