package summary

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestResolveWindow(t *testing.T) {
	// A Wednesday mid-month, mid-day.
	now := time.Date(2024, 6, 12, 14, 30, 0, 0, time.UTC)

	t.Run("day runs from midnight to now", func(t *testing.T) {
		window, err := ResolveWindow(now, "day", nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC); !window.From.Equal(want) {
			t.Errorf("expected from %v, got %v", want, window.From)
		}
		if !window.To.Equal(now) {
			t.Errorf("expected to %v, got %v", now, window.To)
		}
	})

	t.Run("week starts on Monday", func(t *testing.T) {
		window, err := ResolveWindow(now, "week", nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC); !window.From.Equal(want) {
			t.Errorf("expected from %v, got %v", want, window.From)
		}
	})

	t.Run("week on a Sunday still starts the previous Monday", func(t *testing.T) {
		sunday := time.Date(2024, 6, 16, 10, 0, 0, 0, time.UTC)
		window, err := ResolveWindow(sunday, "week", nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC); !window.From.Equal(want) {
			t.Errorf("expected from %v, got %v", want, window.From)
		}
	})

	t.Run("month starts on the first", func(t *testing.T) {
		window, err := ResolveWindow(now, "month", nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC); !window.From.Equal(want) {
			t.Errorf("expected from %v, got %v", want, window.From)
		}
	})

	t.Run("period keyword is case-insensitive", func(t *testing.T) {
		if _, err := ResolveWindow(now, "MONTH", nil, nil); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("custom spans whole days inclusively", func(t *testing.T) {
		start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
		end := time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)

		window, err := ResolveWindow(now, "custom", &start, &end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC); !window.From.Equal(want) {
			t.Errorf("expected from %v, got %v", want, window.From)
		}
		if want := time.Date(2024, 6, 5, 23, 59, 59, 0, time.UTC); !window.To.Equal(want) {
			t.Errorf("expected to %v, got %v", want, window.To)
		}
	})

	t.Run("custom without both bounds is invalid", func(t *testing.T) {
		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

		if _, err := ResolveWindow(now, "custom", &start, nil); !errors.Is(err, domainerror.ErrInvalidPeriod) {
			t.Errorf("expected ErrInvalidPeriod, got %v", err)
		}
		if _, err := ResolveWindow(now, "custom", nil, nil); !errors.Is(err, domainerror.ErrInvalidPeriod) {
			t.Errorf("expected ErrInvalidPeriod, got %v", err)
		}
	})

	t.Run("unknown period is invalid", func(t *testing.T) {
		if _, err := ResolveWindow(now, "year", nil, nil); !errors.Is(err, domainerror.ErrInvalidPeriod) {
			t.Errorf("expected ErrInvalidPeriod, got %v", err)
		}
	})
}
