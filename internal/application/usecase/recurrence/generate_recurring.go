// Package recurrence contains recurring expense use cases.
package recurrence

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ErrRunInProgress is returned when a generation run is triggered while a
// previous run is still executing. The daily run is self-exclusive.
var ErrRunInProgress = errors.New("recurrence run already in progress")

// GenerateRecurringInput carries the day the run materializes occurrences
// for. Today is an explicit input so the logic is testable without the wall
// clock; only its date component is used.
type GenerateRecurringInput struct {
	Today time.Time
}

// GenerationFailure records a per-expense failure during a run.
type GenerationFailure struct {
	ExpenseID uuid.UUID
	Err       error
}

// GenerateRecurringOutput reports what a run did. Failures are per-record
// store errors that did not abort the run.
type GenerateRecurringOutput struct {
	Checked   int
	Generated int
	Failures  []GenerationFailure
}

// GenerateRecurringUseCase advances due recurring expenses by one period:
// the source is deactivated and a fresh occurrence dated today is created.
type GenerateRecurringUseCase struct {
	expenseRepo adapter.ExpenseRepository
	mu          sync.Mutex
}

// NewGenerateRecurringUseCase creates a new GenerateRecurringUseCase instance.
func NewGenerateRecurringUseCase(expenseRepo adapter.ExpenseRepository) *GenerateRecurringUseCase {
	return &GenerateRecurringUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs one generation run for input.Today.
//
// An expense is due when it is active, today is not past its end date, and
// its date advanced by one recurrence period lands exactly on today. Due
// expenses are deactivated and replaced by a new active occurrence in one
// logical store operation; because the source is deactivated first, a second
// run on the same day generates nothing.
//
// A failed scan aborts the run. A failed per-expense write is recorded in the
// output and the run continues with the remaining expenses.
func (uc *GenerateRecurringUseCase) Execute(ctx context.Context, input GenerateRecurringInput) (*GenerateRecurringOutput, error) {
	if !uc.mu.TryLock() {
		return nil, ErrRunInProgress
	}
	defer uc.mu.Unlock()

	recurring, err := uc.expenseRepo.FindByRecurrenceNot(ctx, entity.RecurrenceNone)
	if err != nil {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeStoreFailure, "scan recurring expenses", err)
	}

	today := truncateToDay(input.Today)
	output := &GenerateRecurringOutput{Checked: len(recurring)}

	for _, e := range recurring {
		if !e.Active {
			continue
		}
		if e.RecurrenceEndDate != nil && today.After(truncateToDay(*e.RecurrenceEndDate)) {
			continue
		}

		nextDate, ok := advance(truncateToDay(e.Date), e.Recurrence)
		if !ok {
			// Unknown recurrence values never come from the boundary, but a
			// bad row must not kill the run.
			slog.Warn("Skipping expense with unknown recurrence",
				"expense_id", e.ID,
				"recurrence", e.Recurrence,
			)
			continue
		}

		if !nextDate.Equal(today) {
			continue
		}

		next := e.NextOccurrence(nextDate)
		e.Active = false
		e.UpdatedAt = time.Now().UTC()

		if err := uc.expenseRepo.GenerateOccurrence(ctx, e, next); err != nil {
			slog.Error("Failed to generate recurring occurrence",
				"expense_id", e.ID,
				"error", err,
			)
			output.Failures = append(output.Failures, GenerationFailure{ExpenseID: e.ID, Err: err})
			continue
		}

		output.Generated++
	}

	return output, nil
}

// advance moves a date forward by one recurrence period. Monthly addition
// clamps to the last day of the target month (Jan 31 -> Feb 28).
func advance(date time.Time, recurrence entity.Recurrence) (time.Time, bool) {
	switch recurrence {
	case entity.RecurrenceDaily:
		return date.AddDate(0, 0, 1), true
	case entity.RecurrenceWeekly:
		return date.AddDate(0, 0, 7), true
	case entity.RecurrenceMonthly:
		return addMonthClamped(date), true
	default:
		return time.Time{}, false
	}
}

func addMonthClamped(date time.Time) time.Time {
	year, month, day := date.Date()
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, date.Location())
	lastDay := firstOfNext.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, date.Location())
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
