package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for updating an expense. The field
// set mirrors what an update replaces: title, amount, category, date,
// recurrence, note and tags. Active and the recurrence end date are managed
// through the status toggle and are left untouched here.
type UpdateExpenseInput struct {
	ID         uuid.UUID
	Title      string
	Amount     decimal.Decimal
	Category   string
	Date       time.Time
	Recurrence string
	Note       string
	Tags       string
}

// UpdateExpenseOutput represents the output of updating an expense.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute loads the expense, applies the new field values and persists it.
// Returns ErrExpenseNotFound for an unknown ID.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	recurrence, ok := entity.ParseRecurrence(input.Recurrence)
	if !ok {
		return nil, domainerror.ErrInvalidRecurrence
	}

	existing, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	existing.Title = input.Title
	existing.Amount = input.Amount
	existing.Category = input.Category
	existing.Date = input.Date
	existing.Recurrence = recurrence
	existing.Note = input.Note
	existing.Tags = input.Tags
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, existing); err != nil {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeStoreFailure, "update expense", err)
	}

	return &UpdateExpenseOutput{Expense: existing}, nil
}
