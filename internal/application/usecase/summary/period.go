// Package summary contains spending summary use cases.
package summary

import (
	"strings"
	"time"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// Period keywords accepted by the summary endpoints.
const (
	PeriodDay    = "day"
	PeriodWeek   = "week"
	PeriodMonth  = "month"
	PeriodCustom = "custom"
)

// Window is an inclusive time window produced by ResolveWindow.
type Window struct {
	From time.Time
	To   time.Time
}

// ResolveWindow converts a period keyword into a concrete window.
//
// day, week and month run from the start of the current day, ISO week (Monday)
// or month up to now. custom requires both bounds and runs from the start of
// the start date to 23:59:59 of the end date. Any other keyword, or custom
// with a missing bound, yields ErrInvalidPeriod.
//
// now is an explicit input so the resolution is testable without the wall clock.
func ResolveWindow(now time.Time, period string, start, end *time.Time) (Window, error) {
	switch strings.ToLower(period) {
	case PeriodDay:
		return Window{From: startOfDay(now), To: now}, nil
	case PeriodWeek:
		return Window{From: startOfWeek(now), To: now}, nil
	case PeriodMonth:
		return Window{From: startOfMonth(now), To: now}, nil
	case PeriodCustom:
		if start == nil || end == nil {
			return Window{}, domainerror.ErrInvalidPeriod
		}
		return Window{From: startOfDay(*start), To: endOfDay(*end)}, nil
	default:
		return Window{}, domainerror.ErrInvalidPeriod
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// startOfWeek returns the Monday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	return time.Date(t.Year(), t.Month(), t.Day()-(weekday-1), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
