package expense

import (
	"context"
	"testing"
)

func TestSortExpensesUseCase_Execute(t *testing.T) {
	newRepo := func() *fakeExpenseRepo {
		repo := &fakeExpenseRepo{}
		repo.expenses = append(repo.expenses,
			newTestExpense("Lunch", "5.00", "Food", "2024-03-03"),
			newTestExpense("Concert", "20.00", "Leisure", "2024-03-01"),
			newTestExpense("Taxi", "10.00", "Transport", "2024-03-02"),
		)
		return repo
	}

	t.Run("sorts by amount descending", func(t *testing.T) {
		uc := NewSortExpensesUseCase(newRepo())

		output, err := uc.Execute(context.Background(), SortExpensesInput{SortBy: SortByAmount, Order: "desc"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"20.00", "10.00", "5.00"}
		for i, e := range output.Expenses {
			if e.Amount.String() != want[i] {
				t.Errorf("position %d: expected amount %s, got %s", i, want[i], e.Amount.String())
			}
		}
	})

	t.Run("sorts by title case-insensitively", func(t *testing.T) {
		uc := NewSortExpensesUseCase(newRepo())

		output, err := uc.Execute(context.Background(), SortExpensesInput{SortBy: SortByTitle})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"Concert", "Lunch", "Taxi"}
		for i, e := range output.Expenses {
			if e.Title != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], e.Title)
			}
		}
	})

	t.Run("unknown sort key falls back to date", func(t *testing.T) {
		uc := NewSortExpensesUseCase(newRepo())

		output, err := uc.Execute(context.Background(), SortExpensesInput{SortBy: "bogus"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"Concert", "Taxi", "Lunch"}
		for i, e := range output.Expenses {
			if e.Title != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], e.Title)
			}
		}
	})

	t.Run("descending is the exact reverse of ascending", func(t *testing.T) {
		uc := NewSortExpensesUseCase(newRepo())
		asc, err := uc.Execute(context.Background(), SortExpensesInput{SortBy: SortByAmount, Order: "asc"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc = NewSortExpensesUseCase(newRepo())
		desc, err := uc.Execute(context.Background(), SortExpensesInput{SortBy: SortByAmount, Order: "DESC"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(asc.Expenses) != len(desc.Expenses) {
			t.Fatalf("expected equal lengths, got %d and %d", len(asc.Expenses), len(desc.Expenses))
		}
		for i := range asc.Expenses {
			mirror := desc.Expenses[len(desc.Expenses)-1-i]
			if asc.Expenses[i].ID != mirror.ID {
				t.Errorf("position %d: ascending and reversed descending orders differ", i)
			}
		}
	})

	t.Run("ties keep the scan order", func(t *testing.T) {
		repo := &fakeExpenseRepo{}
		repo.expenses = append(repo.expenses,
			newTestExpense("First", "7.00", "Food", "2024-03-01"),
			newTestExpense("Second", "7.00", "Food", "2024-03-02"),
			newTestExpense("Third", "7.00", "Food", "2024-03-03"),
		)
		uc := NewSortExpensesUseCase(repo)

		output, err := uc.Execute(context.Background(), SortExpensesInput{SortBy: SortByAmount})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"First", "Second", "Third"}
		for i, e := range output.Expenses {
			if e.Title != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], e.Title)
			}
		}
	})
}
