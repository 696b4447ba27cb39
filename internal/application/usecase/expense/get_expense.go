package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// GetExpenseInput represents the input for fetching a single expense.
type GetExpenseInput struct {
	ID uuid.UUID
}

// GetExpenseOutput represents the output of fetching a single expense.
type GetExpenseOutput struct {
	Expense *entity.Expense
}

// GetExpenseUseCase handles fetching a single expense by ID.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute fetches the expense or returns ErrExpenseNotFound.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, input GetExpenseInput) (*GetExpenseOutput, error) {
	exp, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetExpenseOutput{Expense: exp}, nil
}
