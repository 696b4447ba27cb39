package expense

import (
	"context"
	"strings"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// SearchExpensesInput represents the input for keyword search.
type SearchExpensesInput struct {
	Keyword string
}

// SearchExpensesOutput represents the output of keyword search.
type SearchExpensesOutput struct {
	Expenses []*entity.Expense
}

// SearchExpensesUseCase matches a keyword against title, note and tags.
type SearchExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewSearchExpensesUseCase creates a new SearchExpensesUseCase instance.
func NewSearchExpensesUseCase(expenseRepo adapter.ExpenseRepository) *SearchExpensesUseCase {
	return &SearchExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute keeps expenses where the keyword appears, case-insensitively, in
// the title, the note or the tags. A record with none of the three set never
// matches.
func (uc *SearchExpensesUseCase) Execute(ctx context.Context, input SearchExpensesInput) (*SearchExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeStoreFailure, "scan expenses", err)
	}

	keyword := strings.ToLower(input.Keyword)
	found := make([]*entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		if containsFold(e.Title, keyword) || containsFold(e.Note, keyword) || containsFold(e.Tags, keyword) {
			found = append(found, e)
		}
	}

	return &SearchExpensesOutput{Expenses: found}, nil
}

func containsFold(field, loweredKeyword string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), loweredKeyword)
}
