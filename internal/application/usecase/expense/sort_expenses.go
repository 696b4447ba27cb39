package expense

import (
	"context"
	"sort"
	"strings"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// Sort keys accepted by the sorted listing. Anything else falls back to date
// ascending, matching the permissive behavior callers rely on.
const (
	SortByAmount   = "amount"
	SortByTitle    = "title"
	SortByCategory = "category"
	SortByDate     = "date"
)

// SortExpensesInput represents the input for the sorted listing.
type SortExpensesInput struct {
	SortBy string
	Order  string // "asc" (default) or "desc"
}

// SortExpensesOutput represents the output of the sorted listing.
type SortExpensesOutput struct {
	Expenses []*entity.Expense
}

// SortExpensesUseCase orders a full scan by a chosen field and direction.
type SortExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewSortExpensesUseCase creates a new SortExpensesUseCase instance.
func NewSortExpensesUseCase(expenseRepo adapter.ExpenseRepository) *SortExpensesUseCase {
	return &SortExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute sorts the scan stably in ascending order, then reverses the whole
// slice for descending. Ties keep the scan order, so repeated runs on
// unchanged data are reproducible and desc is the exact reverse of asc.
func (uc *SortExpensesUseCase) Execute(ctx context.Context, input SortExpensesInput) (*SortExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeStoreFailure, "scan expenses", err)
	}

	less := lessFunc(input.SortBy, expenses)
	sort.SliceStable(expenses, less)

	if strings.EqualFold(input.Order, "desc") {
		for i, j := 0, len(expenses)-1; i < j; i, j = i+1, j-1 {
			expenses[i], expenses[j] = expenses[j], expenses[i]
		}
	}

	return &SortExpensesOutput{Expenses: expenses}, nil
}

func lessFunc(sortBy string, expenses []*entity.Expense) func(i, j int) bool {
	switch strings.ToLower(sortBy) {
	case SortByAmount:
		return func(i, j int) bool {
			return expenses[i].Amount.LessThan(expenses[j].Amount)
		}
	case SortByTitle:
		return func(i, j int) bool {
			return strings.ToLower(expenses[i].Title) < strings.ToLower(expenses[j].Title)
		}
	case SortByCategory:
		return func(i, j int) bool {
			return strings.ToLower(expenses[i].Category) < strings.ToLower(expenses[j].Category)
		}
	default:
		return func(i, j int) bool {
			return expenses[i].Date.Before(expenses[j].Date)
		}
	}
}
