// Package scheduler runs the background poller that promotes due
// scheduled jobs into actual sends.
//
// It is deliberately a timer-driven scan, not an event-driven queue: email
// scheduling tolerance is minutes, and the conditional claim inside the
// pipeline keeps overlapping ticks from dispatching a job twice.
package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler/mock.go -package=mocks

type promoter interface {
	PromoteDueJobs(ctx context.Context, strategy retry.Strategy) error
}

// Scheduler periodically promotes due scheduled jobs.
type Scheduler struct {
	pipeline promoter
	interval time.Duration
}

// New creates a scheduler polling at the given interval.
func New(pipeline promoter, interval time.Duration) *Scheduler {
	return &Scheduler{pipeline: pipeline, interval: interval}
}

// Run polls for due jobs until the context is cancelled. It performs one
// scan immediately on start so a restart picks up overdue jobs without
// waiting a full interval.
func (s *Scheduler) Run(ctx context.Context, strategy retry.Strategy) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.promote(ctx, strategy)

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("scheduler stopped")
			return
		case <-ticker.C:
			s.promote(ctx, strategy)
		}
	}
}

func (s *Scheduler) promote(ctx context.Context, strategy retry.Strategy) {
	if err := s.pipeline.PromoteDueJobs(ctx, strategy); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to promote due jobs")
	}
}
