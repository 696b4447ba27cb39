// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseRepository defines the record store contract consumed by the core.
//
// Scans observe the store at call time only; a write landing mid-scan may or
// may not be reflected. Callers get best-effort consistency, not snapshots.
type ExpenseRepository interface {
	// Insert persists a new expense.
	Insert(ctx context.Context, expense *entity.Expense) error

	// Update replaces the stored expense with the given one.
	// Returns ErrExpenseNotFound if the ID is absent.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense by ID.
	// Returns ErrExpenseNotFound if the ID is absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves an expense by its ID.
	// Returns ErrExpenseNotFound if the ID is absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindAll retrieves every expense. Order is unspecified but stable within
	// a single call.
	FindAll(ctx context.Context) ([]*entity.Expense, error)

	// FindByCategory retrieves expenses whose category matches, case-insensitively.
	FindByCategory(ctx context.Context, category string) ([]*entity.Expense, error)

	// FindByDateRange retrieves expenses with from <= date <= to.
	FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Expense, error)

	// FindByRecurrenceNot retrieves expenses whose recurrence differs from the
	// given value.
	FindByRecurrenceNot(ctx context.Context, recurrence entity.Recurrence) ([]*entity.Expense, error)

	// GenerateOccurrence deactivates the source expense and inserts the
	// generated occurrence as one logical unit. Implementations that support
	// transactions must make the pair atomic; otherwise a partial failure is
	// returned as an error, never swallowed.
	GenerateOccurrence(ctx context.Context, source *entity.Expense, next *entity.Expense) error
}
