// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Title             string  `json:"title,omitempty"`
	Amount            float64 `json:"amount" binding:"required"`
	Category          string  `json:"category" binding:"required,max=100"`
	Date              string  `json:"date" binding:"required"`
	Recurrence        string  `json:"recurrence,omitempty"`
	Note              string  `json:"note,omitempty" binding:"omitempty,max=1000"`
	Tags              string  `json:"tags,omitempty" binding:"omitempty,max=255"`
	RecurrenceEndDate *string `json:"recurrence_end_date,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense update. The
// whole field set is replaced, matching the update semantics of the store.
type UpdateExpenseRequest struct {
	Title      string  `json:"title,omitempty"`
	Amount     float64 `json:"amount" binding:"required"`
	Category   string  `json:"category" binding:"required,max=100"`
	Date       string  `json:"date" binding:"required"`
	Recurrence string  `json:"recurrence,omitempty"`
	Note       string  `json:"note,omitempty" binding:"omitempty,max=1000"`
	Tags       string  `json:"tags,omitempty" binding:"omitempty,max=255"`
}

// SetRecurringStatusRequest represents the request body for the status toggle.
type SetRecurringStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID                string  `json:"id"`
	Title             string  `json:"title,omitempty"`
	Amount            string  `json:"amount"`
	Category          string  `json:"category"`
	Date              string  `json:"date"`
	Recurrence        string  `json:"recurrence"`
	Active            bool    `json:"active"`
	RecurrenceEndDate *string `json:"recurrence_end_date,omitempty"`
	Note              string  `json:"note,omitempty"`
	Tags              string  `json:"tags,omitempty"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Count    int               `json:"count"`
}

// ToExpenseResponse converts an Expense entity to its response form.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:         e.ID.String(),
		Title:      e.Title,
		Amount:     e.Amount.String(),
		Category:   e.Category,
		Date:       e.Date.Format("2006-01-02"),
		Recurrence: string(e.Recurrence),
		Active:     e.Active,
		Note:       e.Note,
		Tags:       e.Tags,
	}
	if e.RecurrenceEndDate != nil {
		endDate := e.RecurrenceEndDate.Format("2006-01-02")
		resp.RecurrenceEndDate = &endDate
	}
	return resp
}

// ToExpenseListResponse converts a slice of entities to a list response.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	items := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		items[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{
		Expenses: items,
		Count:    len(items),
	}
}
