// Package scheduler triggers the daily recurring expense generation run.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/expense-tracker/backend/internal/application/usecase/recurrence"
)

// Scheduler runs the recurring expense generation once per day at midnight UTC.
type Scheduler struct {
	generate *recurrence.GenerateRecurringUseCase
	now      func() time.Time
}

// NewScheduler creates a new recurrence scheduler.
func NewScheduler(generate *recurrence.GenerateRecurringUseCase) *Scheduler {
	return &Scheduler{
		generate: generate,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Start begins the scheduler loop. It blocks until the context is cancelled.
// A run is triggered immediately on start for the current day, then at every
// midnight UTC thereafter.
func (s *Scheduler) Start(ctx context.Context) {
	slog.Info("Recurrence scheduler started")

	s.run(ctx)

	for {
		next := nextMidnight(s.now())
		timer := time.NewTimer(next.Sub(s.now()))

		select {
		case <-ctx.Done():
			timer.Stop()
			slog.Info("Recurrence scheduler shutting down")
			return
		case <-timer.C:
			s.run(ctx)
		}
	}
}

func (s *Scheduler) run(ctx context.Context) {
	today := s.now().Truncate(24 * time.Hour)

	output, err := s.generate.Execute(ctx, recurrence.GenerateRecurringInput{Today: today})
	if err != nil {
		if errors.Is(err, recurrence.ErrRunInProgress) {
			slog.Warn("Recurrence run already in progress, skipping", "today", today.Format("2006-01-02"))
			return
		}
		slog.Error("Recurrence run failed", "today", today.Format("2006-01-02"), "error", err)
		return
	}

	slog.Info("Recurrence run completed",
		"today", today.Format("2006-01-02"),
		"checked", output.Checked,
		"generated", output.Generated,
		"failures", len(output.Failures),
	)
}

// nextMidnight returns the first midnight UTC strictly after now.
func nextMidnight(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}
