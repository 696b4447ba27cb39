package recurrence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// SetRecurringStatusInput represents the input for toggling an expense's
// active flag.
type SetRecurringStatusInput struct {
	ID     uuid.UUID
	Active bool
}

// SetRecurringStatusOutput represents the output of the status toggle.
type SetRecurringStatusOutput struct {
	Expense *entity.Expense
}

// SetRecurringStatusUseCase activates or deactivates a recurring expense.
// A deactivated source is never advanced by the generation run.
type SetRecurringStatusUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewSetRecurringStatusUseCase creates a new SetRecurringStatusUseCase instance.
func NewSetRecurringStatusUseCase(expenseRepo adapter.ExpenseRepository) *SetRecurringStatusUseCase {
	return &SetRecurringStatusUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute sets the active flag. Returns ErrExpenseNotFound for an unknown ID.
func (uc *SetRecurringStatusUseCase) Execute(ctx context.Context, input SetRecurringStatusInput) (*SetRecurringStatusOutput, error) {
	exp, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	exp.Active = input.Active
	exp.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, exp); err != nil {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeStoreFailure, "update expense status", err)
	}

	return &SetRecurringStatusOutput{Expense: exp}, nil
}
