package recurrence

import (
	"context"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ListRecurringOutput represents the output of listing recurring expenses.
type ListRecurringOutput struct {
	Expenses []*entity.Expense
}

// ListRecurringUseCase lists every expense with a recurrence set.
type ListRecurringUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListRecurringUseCase creates a new ListRecurringUseCase instance.
func NewListRecurringUseCase(expenseRepo adapter.ExpenseRepository) *ListRecurringUseCase {
	return &ListRecurringUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute returns all expenses whose recurrence is not "none".
func (uc *ListRecurringUseCase) Execute(ctx context.Context) (*ListRecurringOutput, error) {
	expenses, err := uc.expenseRepo.FindByRecurrenceNot(ctx, entity.RecurrenceNone)
	if err != nil {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeStoreFailure, "scan recurring expenses", err)
	}
	return &ListRecurringOutput{Expenses: expenses}, nil
}
