package summary

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// GetCategorySummaryInput represents the input for the category-wise summary.
type GetCategorySummaryInput struct {
	Now    time.Time
	Period string
	Start  *time.Time
	End    *time.Time
}

// GetCategorySummaryOutput represents spending grouped by category.
type GetCategorySummaryOutput struct {
	From           string
	To             string
	CategoryTotals map[string]decimal.Decimal
}

// GetCategorySummaryUseCase groups window spending by category.
type GetCategorySummaryUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetCategorySummaryUseCase creates a new GetCategorySummaryUseCase instance.
func NewGetCategorySummaryUseCase(expenseRepo adapter.ExpenseRepository) *GetCategorySummaryUseCase {
	return &GetCategorySummaryUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute resolves the window and sums amounts per category. Group keys are
// the exact stored category strings; unlike the category filter they are not
// case-normalized.
func (uc *GetCategorySummaryUseCase) Execute(ctx context.Context, input GetCategorySummaryInput) (*GetCategorySummaryOutput, error) {
	window, err := ResolveWindow(input.Now, input.Period, input.Start, input.End)
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindByDateRange(ctx, window.From, window.To)
	if err != nil {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeStoreFailure, "scan expenses by date range", err)
	}

	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}

	return &GetCategorySummaryOutput{
		From:           window.From.Format("2006-01-02"),
		To:             window.To.Format("2006-01-02"),
		CategoryTotals: totals,
	}, nil
}
