package summary

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// GetSummaryInput represents the input for the total spending summary.
type GetSummaryInput struct {
	Now      time.Time
	Period   string
	Category string // Optional; case-insensitive match
	Start    *time.Time
	End      *time.Time
}

// GetSummaryOutput represents the total spending summary.
type GetSummaryOutput struct {
	Period     string
	Category   string // Empty when no category filter was applied
	TotalSpent decimal.Decimal
	From       string // Date-only, YYYY-MM-DD
	To         string
}

// GetSummaryUseCase computes the total spent over a resolved period window.
type GetSummaryUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(expenseRepo adapter.ExpenseRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute resolves the window, scans it and sums amounts, optionally narrowed
// to a single category.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	window, err := ResolveWindow(input.Now, input.Period, input.Start, input.End)
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindByDateRange(ctx, window.From, window.To)
	if err != nil {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeStoreFailure, "scan expenses by date range", err)
	}

	total := decimal.Zero
	for _, e := range expenses {
		if input.Category != "" && !strings.EqualFold(e.Category, input.Category) {
			continue
		}
		total = total.Add(e.Amount)
	}

	return &GetSummaryOutput{
		Period:     input.Period,
		Category:   input.Category,
		TotalSpent: total,
		From:       window.From.Format("2006-01-02"),
		To:         window.To.Format("2006-01-02"),
	}, nil
}
