package summary

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// GetDailySummaryInput represents the input for the per-day summary. Both
// bounds are mandatory; the controller rejects requests missing either.
type GetDailySummaryInput struct {
	Start time.Time
	End   time.Time
}

// GetDailySummaryOutput maps ISO dates (YYYY-MM-DD) to the total spent that
// day. Days without expenses are absent, not zero-filled.
type GetDailySummaryOutput struct {
	DailyTotals map[string]decimal.Decimal
}

// GetDailySummaryUseCase groups spending in a custom window by calendar day.
type GetDailySummaryUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetDailySummaryUseCase creates a new GetDailySummaryUseCase instance.
func NewGetDailySummaryUseCase(expenseRepo adapter.ExpenseRepository) *GetDailySummaryUseCase {
	return &GetDailySummaryUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute sums amounts per date-only key over [start 00:00:00, end 23:59:59].
func (uc *GetDailySummaryUseCase) Execute(ctx context.Context, input GetDailySummaryInput) (*GetDailySummaryOutput, error) {
	from := startOfDay(input.Start)
	to := endOfDay(input.End)

	expenses, err := uc.expenseRepo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeStoreFailure, "scan expenses by date range", err)
	}

	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		day := e.Date.Format("2006-01-02")
		totals[day] = totals[day].Add(e.Amount)
	}

	return &GetDailySummaryOutput{DailyTotals: totals}, nil
}
