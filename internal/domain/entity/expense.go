// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recurrence represents how often an expense repeats.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// ParseRecurrence converts a raw string into a Recurrence. Matching is
// case-insensitive and an empty string means "none". The boolean reports
// whether the value was recognized.
func ParseRecurrence(raw string) (Recurrence, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(RecurrenceNone):
		return RecurrenceNone, true
	case string(RecurrenceDaily):
		return RecurrenceDaily, true
	case string(RecurrenceWeekly):
		return RecurrenceWeekly, true
	case string(RecurrenceMonthly):
		return RecurrenceMonthly, true
	default:
		return RecurrenceNone, false
	}
}

// Expense represents a single monetary expense record.
type Expense struct {
	ID                uuid.UUID
	Title             string
	Amount            decimal.Decimal // Signed; negative values represent refunds
	Category          string
	Date              time.Time
	Recurrence        Recurrence
	Active            bool
	RecurrenceEndDate *time.Time // Date-only; nil means no end
	Note              string
	Tags              string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewExpense creates a new Expense entity with a fresh ID.
func NewExpense(
	title string,
	amount decimal.Decimal,
	category string,
	date time.Time,
	recurrence Recurrence,
	note string,
	tags string,
	recurrenceEndDate *time.Time,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:                uuid.New(),
		Title:             title,
		Amount:            amount,
		Category:          category,
		Date:              date,
		Recurrence:        recurrence,
		Active:            true,
		Note:              note,
		Tags:              tags,
		RecurrenceEndDate: recurrenceEndDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// IsRecurring reports whether the expense repeats.
func (e *Expense) IsRecurring() bool {
	return e.Recurrence != RecurrenceNone && e.Recurrence != ""
}

// NextOccurrence builds the generated expense for nextDate, copying title,
// amount, category and recurrence from the source. Note, tags and the
// recurrence end date are not carried over, and the new record is active.
func (e *Expense) NextOccurrence(nextDate time.Time) *Expense {
	return NewExpense(e.Title, e.Amount, e.Category, nextDate, e.Recurrence, "", "", nil)
}
