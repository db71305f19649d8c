package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sessionLifecycle interface {
	MarkPast(ctx context.Context) (int64, error)
}

// Scheduler periodically demotes sessions whose start time has elapsed from
// active to past. It runs once immediately on start (to repair staleness
// accumulated while the process was down) and then on a fixed interval.
type Scheduler struct {
	lifecycle sessionLifecycle
	interval  time.Duration
	catchUp   bool
	logger    logger.Logger
}

func New(
	lifecycle sessionLifecycle,
	interval time.Duration,
	catchUp bool,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		lifecycle: lifecycle,
		interval:  interval,
		catchUp:   catchUp,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("lifecycle scheduler started",
		logger.Duration("interval", s.interval),
		logger.Bool("catch_up", s.catchUp),
	)

	if s.catchUp {
		s.tick(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("lifecycle scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	count, err := s.lifecycle.MarkPast(ctx)
	if err != nil {
		s.logger.Error("failed to mark past sessions",
			logger.String("error", err.Error()),
		)
		return
	}

	if count > 0 {
		s.logger.Info("lifecycle sweep complete",
			logger.Int64("sessions_past", count),
		)
	}
}
