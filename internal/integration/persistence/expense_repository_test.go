package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

func newTestRepository(t *testing.T) adapter.ExpenseRepository {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	if err := db.AutoMigrate(&model.ExpenseModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	t.Cleanup(func() { _ = dbSQL.Close() })

	return NewExpenseRepository(db)
}

func storedExpense(title, amount, category, date string, recurrence entity.Recurrence) *entity.Expense {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return entity.NewExpense(title, decimal.RequireFromString(amount), category, d, recurrence, "", "", nil)
}

func TestExpenseRepository_InsertAndFindByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	endDate := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	exp := entity.NewExpense(
		"Rent",
		decimal.RequireFromString("900.50"),
		"Housing",
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		entity.RecurrenceMonthly,
		"flat 4b",
		"fixed,home",
		&endDate,
	)

	if err := repo.Insert(ctx, exp); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}

	found, err := repo.FindByID(ctx, exp.ID)
	if err != nil {
		t.Fatalf("unexpected find error: %v", err)
	}

	if found.Title != "Rent" || found.Category != "Housing" {
		t.Errorf("unexpected fields: %q %q", found.Title, found.Category)
	}
	if !found.Amount.Equal(exp.Amount) {
		t.Errorf("expected amount %s, got %s", exp.Amount, found.Amount)
	}
	if found.Recurrence != entity.RecurrenceMonthly {
		t.Errorf("expected monthly recurrence, got %s", found.Recurrence)
	}
	if !found.Active {
		t.Error("expected stored expense to be active")
	}
	if found.RecurrenceEndDate == nil || !found.RecurrenceEndDate.Equal(endDate) {
		t.Error("expected recurrence end date to round-trip")
	}
	if found.Note != "flat 4b" || found.Tags != "fixed,home" {
		t.Errorf("unexpected note/tags: %q %q", found.Note, found.Tags)
	}
}

func TestExpenseRepository_FindByIDNotFound(t *testing.T) {
	repo := newTestRepository(t)

	if _, err := repo.FindByID(context.Background(), uuid.New()); !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("expected ErrExpenseNotFound, got %v", err)
	}
}

func TestExpenseRepository_Update(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	exp := storedExpense("Groceries", "42.50", "Food", "2024-01-01", entity.RecurrenceNone)
	if err := repo.Insert(ctx, exp); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}

	t.Run("persists changed fields", func(t *testing.T) {
		exp.Title = "Weekly groceries"
		exp.Amount = decimal.RequireFromString("55.00")
		if err := repo.Update(ctx, exp); err != nil {
			t.Fatalf("unexpected update error: %v", err)
		}

		found, err := repo.FindByID(ctx, exp.ID)
		if err != nil {
			t.Fatalf("unexpected find error: %v", err)
		}
		if found.Title != "Weekly groceries" {
			t.Errorf("expected updated title, got %s", found.Title)
		}
		if !found.Amount.Equal(decimal.RequireFromString("55.00")) {
			t.Errorf("expected updated amount, got %s", found.Amount)
		}
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		ghost := storedExpense("Ghost", "1.00", "Misc", "2024-01-01", entity.RecurrenceNone)
		if err := repo.Update(ctx, ghost); !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("expected ErrExpenseNotFound, got %v", err)
		}
	})
}

func TestExpenseRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	exp := storedExpense("Groceries", "42.50", "Food", "2024-01-01", entity.RecurrenceNone)
	if err := repo.Insert(ctx, exp); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}

	if err := repo.Delete(ctx, exp.ID); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if _, err := repo.FindByID(ctx, exp.ID); !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("expected expense to be gone, got %v", err)
	}
	if err := repo.Delete(ctx, exp.ID); !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("expected ErrExpenseNotFound on second delete, got %v", err)
	}
}

func TestExpenseRepository_FindByCategory(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, e := range []*entity.Expense{
		storedExpense("Groceries", "42.50", "Food", "2024-01-01", entity.RecurrenceNone),
		storedExpense("Dinner", "18.00", "food", "2024-01-02", entity.RecurrenceNone),
		storedExpense("Fuel", "60.00", "Gas", "2024-01-03", entity.RecurrenceNone),
	} {
		if err := repo.Insert(ctx, e); err != nil {
			t.Fatalf("unexpected insert error: %v", err)
		}
	}

	found, err := repo.FindByCategory(ctx, "FOOD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("expected 2 food expenses, got %d", len(found))
	}
}

func TestExpenseRepository_FindByDateRange(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, e := range []*entity.Expense{
		storedExpense("Before", "1.00", "Misc", "2024-01-01", entity.RecurrenceNone),
		storedExpense("LowerBound", "2.00", "Misc", "2024-01-10", entity.RecurrenceNone),
		storedExpense("Inside", "3.00", "Misc", "2024-01-15", entity.RecurrenceNone),
		storedExpense("UpperBound", "4.00", "Misc", "2024-01-20", entity.RecurrenceNone),
		storedExpense("After", "5.00", "Misc", "2024-01-21", entity.RecurrenceNone),
	} {
		if err := repo.Insert(ctx, e); err != nil {
			t.Fatalf("unexpected insert error: %v", err)
		}
	}

	from := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	found, err := repo.FindByDateRange(ctx, from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 3 {
		t.Fatalf("expected 3 expenses, both bounds inclusive, got %d", len(found))
	}
}

func TestExpenseRepository_FindByRecurrenceNot(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, e := range []*entity.Expense{
		storedExpense("Rent", "900.00", "Housing", "2024-01-01", entity.RecurrenceMonthly),
		storedExpense("Gym", "30.00", "Health", "2024-01-01", entity.RecurrenceWeekly),
		storedExpense("Cinema", "12.00", "Leisure", "2024-01-01", entity.RecurrenceNone),
	} {
		if err := repo.Insert(ctx, e); err != nil {
			t.Fatalf("unexpected insert error: %v", err)
		}
	}

	found, err := repo.FindByRecurrenceNot(ctx, entity.RecurrenceNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("expected 2 recurring expenses, got %d", len(found))
	}
}

func TestExpenseRepository_GenerateOccurrence(t *testing.T) {
	t.Run("deactivates the source and inserts the occurrence", func(t *testing.T) {
		repo := newTestRepository(t)
		ctx := context.Background()

		source := storedExpense("Rent", "900.00", "Housing", "2024-06-01", entity.RecurrenceMonthly)
		if err := repo.Insert(ctx, source); err != nil {
			t.Fatalf("unexpected insert error: %v", err)
		}

		next := source.NextOccurrence(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
		source.Active = false

		if err := repo.GenerateOccurrence(ctx, source, next); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		storedSource, err := repo.FindByID(ctx, source.ID)
		if err != nil {
			t.Fatalf("unexpected find error: %v", err)
		}
		if storedSource.Active {
			t.Error("expected source to be deactivated")
		}

		storedNext, err := repo.FindByID(ctx, next.ID)
		if err != nil {
			t.Fatalf("unexpected find error: %v", err)
		}
		if !storedNext.Active {
			t.Error("expected occurrence to be active")
		}
	})

	t.Run("missing source rolls the pair back", func(t *testing.T) {
		repo := newTestRepository(t)
		ctx := context.Background()

		source := storedExpense("Ghost", "1.00", "Misc", "2024-06-01", entity.RecurrenceDaily)
		next := source.NextOccurrence(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC))

		if err := repo.GenerateOccurrence(ctx, source, next); !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Fatalf("expected ErrExpenseNotFound, got %v", err)
		}
		if _, err := repo.FindByID(ctx, next.ID); !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Error("expected occurrence not to be inserted")
		}
	})
}
