package expense

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeExpenseRepo is an in-memory ExpenseRepository for use case tests.
type fakeExpenseRepo struct {
	expenses []*entity.Expense

	findAllErr error
	insertErr  error
	updateErr  error
}

func (f *fakeExpenseRepo) Insert(ctx context.Context, expense *entity.Expense) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.expenses = append(f.expenses, expense)
	return nil
}

func (f *fakeExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, e := range f.expenses {
		if e.ID == expense.ID {
			f.expenses[i] = expense
			return nil
		}
	}
	return domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, e := range f.expenses {
		if e.ID == id {
			f.expenses = append(f.expenses[:i], f.expenses[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	for _, e := range f.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) FindAll(ctx context.Context) ([]*entity.Expense, error) {
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	out := make([]*entity.Expense, len(f.expenses))
	copy(out, f.expenses)
	return out, nil
}

func (f *fakeExpenseRepo) FindByCategory(ctx context.Context, category string) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range f.expenses {
		if strings.EqualFold(e.Category, category) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range f.expenses {
		if !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) FindByRecurrenceNot(ctx context.Context, recurrence entity.Recurrence) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range f.expenses {
		if e.Recurrence != recurrence {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) GenerateOccurrence(ctx context.Context, source *entity.Expense, next *entity.Expense) error {
	if err := f.Update(ctx, source); err != nil {
		return err
	}
	return f.Insert(ctx, next)
}

// newTestExpense builds an expense with the given fields and a fixed date
// layout, keeping test setup short.
func newTestExpense(title string, amount string, category string, date string) *entity.Expense {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return entity.NewExpense(title, decimal.RequireFromString(amount), category, d, entity.RecurrenceNone, "", "", nil)
}
