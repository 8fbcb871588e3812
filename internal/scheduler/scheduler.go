package scheduler

import (
	"context"
	"log/slog"
	"time"

	"tee-sheet/internal/domain/teetime"
	"tee-sheet/internal/pkg/clock"
)

type bookingsSweeper interface {
	ClearBookingsBefore(ctx context.Context, date teetime.Date) (int64, error)
}

// Scheduler clears stale bookings once a day: every slot dated before the
// current day loses its players, the slots themselves stay.
type Scheduler struct {
	sweeper bookingsSweeper
	clock   clock.Clock
	offset  time.Duration // past midnight
	logger  *slog.Logger
}

func New(sweeper bookingsSweeper, clk clock.Clock, offset time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		sweeper: sweeper,
		clock:   clk,
		offset:  offset,
		logger:  logger,
	}
}

// Start blocks until ctx is cancelled. It sweeps once immediately to cover
// runs missed while the process was down, then once per day.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("bookings sweep scheduler started", "offset", s.offset)

	s.sweep(ctx)

	for {
		wait := s.untilNextRun(s.clock.Now())
		select {
		case <-ctx.Done():
			s.logger.Info("bookings sweep scheduler stopped")
			return
		case <-time.After(wait):
			s.sweep(ctx)
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	today := teetime.DateOf(s.clock.Now())

	cleared, err := s.sweeper.ClearBookingsBefore(ctx, today)
	if err != nil {
		s.logger.Error("failed to clear stale bookings", "error", err.Error())
		return
	}
	s.logger.Info("cleared stale bookings", "before", today.String(), "players_removed", cleared)
}

// untilNextRun returns the wait until the next midnight-plus-offset after now.
func (s *Scheduler) untilNextRun(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(s.offset)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
