package expense

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ListExpensesInput represents the optional, conjunctive filters for listing
// expenses. An absent filter places no constraint on that dimension.
type ListExpensesInput struct {
	Category  string // Case-insensitive exact match
	Start     *time.Time
	End       *time.Time
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase applies the filter set over a full store scan.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute scans all expenses and keeps those passing every supplied filter.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeStoreFailure, "scan expenses", err)
	}

	filtered := make([]*entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		if matches(e, input) {
			filtered = append(filtered, e)
		}
	}

	return &ListExpensesOutput{Expenses: filtered}, nil
}

// matches reports whether e passes every supplied filter. The date-range
// filter only constrains when both bounds are present.
func matches(e *entity.Expense, input ListExpensesInput) bool {
	if input.Category != "" && !strings.EqualFold(e.Category, input.Category) {
		return false
	}
	if input.Start != nil && input.End != nil {
		if e.Date.Before(*input.Start) || e.Date.After(*input.End) {
			return false
		}
	}
	if input.MinAmount != nil && e.Amount.LessThan(*input.MinAmount) {
		return false
	}
	if input.MaxAmount != nil && e.Amount.GreaterThan(*input.MaxAmount) {
		return false
	}
	return true
}
