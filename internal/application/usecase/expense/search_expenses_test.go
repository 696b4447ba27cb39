package expense

import (
	"context"
	"testing"
)

func TestSearchExpensesUseCase_Execute(t *testing.T) {
	repo := &fakeExpenseRepo{}

	coffee := newTestExpense("Morning coffee", "3.50", "Food", "2024-04-01")
	coffee.Tags = "caffeine,routine"

	lunch := newTestExpense("Team lunch", "25.00", "Food", "2024-04-02")
	lunch.Note = "Coffee included"

	fuel := newTestExpense("Fuel", "55.00", "Gas", "2024-04-03")

	repo.expenses = append(repo.expenses, coffee, lunch, fuel)
	uc := NewSearchExpensesUseCase(repo)

	t.Run("matches across title, note and tags", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), SearchExpensesInput{Keyword: "coffee"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 2 {
			t.Errorf("expected 2 matches, got %d", len(output.Expenses))
		}
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), SearchExpensesInput{Keyword: "CAFFEINE"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 1 {
			t.Fatalf("expected 1 match, got %d", len(output.Expenses))
		}
		if output.Expenses[0].Title != "Morning coffee" {
			t.Errorf("expected Morning coffee, got %s", output.Expenses[0].Title)
		}
	})

	t.Run("no match returns empty result", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), SearchExpensesInput{Keyword: "groceries"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 0 {
			t.Errorf("expected no matches, got %d", len(output.Expenses))
		}
	})
}
