package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestListExpensesUseCase_Execute(t *testing.T) {
	repo := &fakeExpenseRepo{}
	repo.expenses = append(repo.expenses,
		newTestExpense("Groceries", "42.50", "Food", "2024-01-01"),
		newTestExpense("Dinner", "18.00", "food", "2024-01-15"),
		newTestExpense("Fuel", "60.00", "Gas", "2024-02-01"),
	)
	uc := NewListExpensesUseCase(repo)

	t.Run("no filters returns everything", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListExpensesInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 3 {
			t.Errorf("expected 3 expenses, got %d", len(output.Expenses))
		}
	})

	t.Run("category filter is case-insensitive", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListExpensesInput{Category: "FOOD"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 2 {
			t.Errorf("expected 2 food expenses, got %d", len(output.Expenses))
		}
	})

	t.Run("date filter needs both bounds", func(t *testing.T) {
		start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

		// Only one bound: no date constraint applies.
		output, err := uc.Execute(context.Background(), ListExpensesInput{Start: &start})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 3 {
			t.Errorf("expected 3 expenses with a single bound, got %d", len(output.Expenses))
		}

		end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
		output, err = uc.Execute(context.Background(), ListExpensesInput{Start: &start, End: &end})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 1 {
			t.Fatalf("expected 1 expense in range, got %d", len(output.Expenses))
		}
		if output.Expenses[0].Title != "Dinner" {
			t.Errorf("expected Dinner, got %s", output.Expenses[0].Title)
		}
	})

	t.Run("amount bounds are inclusive", func(t *testing.T) {
		min := decimal.RequireFromString("18.00")
		max := decimal.RequireFromString("42.50")

		output, err := uc.Execute(context.Background(), ListExpensesInput{MinAmount: &min, MaxAmount: &max})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 2 {
			t.Errorf("expected 2 expenses within amount bounds, got %d", len(output.Expenses))
		}
	})

	t.Run("max amount alone applies", func(t *testing.T) {
		max := decimal.RequireFromString("18.00")

		output, err := uc.Execute(context.Background(), ListExpensesInput{MaxAmount: &max})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 1 {
			t.Fatalf("expected 1 expense under the max bound, got %d", len(output.Expenses))
		}
		if output.Expenses[0].Title != "Dinner" {
			t.Errorf("expected Dinner, got %s", output.Expenses[0].Title)
		}
	})

	t.Run("filters combine conjunctively", func(t *testing.T) {
		min := decimal.RequireFromString("40.00")

		output, err := uc.Execute(context.Background(), ListExpensesInput{Category: "Food", MinAmount: &min})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 1 {
			t.Fatalf("expected 1 expense, got %d", len(output.Expenses))
		}
		if output.Expenses[0].Title != "Groceries" {
			t.Errorf("expected Groceries, got %s", output.Expenses[0].Title)
		}
	})

	t.Run("scan failure carries the store failure code", func(t *testing.T) {
		cause := errors.New("connection refused")
		failing := NewListExpensesUseCase(&fakeExpenseRepo{findAllErr: cause})

		_, err := failing.Execute(context.Background(), ListExpensesInput{})
		var expErr *domainerror.ExpenseError
		if !errors.As(err, &expErr) {
			t.Fatalf("expected an ExpenseError, got %v", err)
		}
		if expErr.Code != domainerror.ErrCodeStoreFailure {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeStoreFailure, expErr.Code)
		}
		if !errors.Is(err, cause) {
			t.Errorf("expected the repository error to stay unwrappable, got %v", err)
		}
	})
}
