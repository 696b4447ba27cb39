// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for creating an expense.
type CreateExpenseInput struct {
	Title             string
	Amount            decimal.Decimal
	Category          string
	Date              time.Time
	Recurrence        string // Raw value; validated here
	Note              string
	Tags              string
	RecurrenceEndDate *time.Time
}

// CreateExpenseOutput represents the output of creating an expense.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute validates the recurrence value, builds the entity and persists it.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	recurrence, ok := entity.ParseRecurrence(input.Recurrence)
	if !ok {
		return nil, domainerror.ErrInvalidRecurrence
	}

	exp := entity.NewExpense(
		input.Title,
		input.Amount,
		input.Category,
		input.Date,
		recurrence,
		input.Note,
		input.Tags,
		input.RecurrenceEndDate,
	)

	if err := uc.expenseRepo.Insert(ctx, exp); err != nil {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeStoreFailure, "insert expense", err)
	}

	return &CreateExpenseOutput{Expense: exp}, nil
}
