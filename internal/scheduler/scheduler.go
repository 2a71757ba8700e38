package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/jakejarvis/domainstack.io-sub006/internal/workflow"
)

// Monitor defines the interface for one monitoring pass.
type Monitor interface {
	RunPass(ctx context.Context) (*workflow.PassStats, error)
}

type Scheduler struct {
	monitor     Monitor
	interval    time.Duration
	passTimeout time.Duration
	logger      *slog.Logger
}

func NewScheduler(monitor Monitor, interval, passTimeout time.Duration, logger *slog.Logger) *Scheduler {
	if passTimeout == 0 {
		passTimeout = 15 * time.Minute
	}
	return &Scheduler{
		monitor:     monitor,
		interval:    interval,
		passTimeout: passTimeout,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runPass(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runPass(ctx)
		}
	}
}

func (s *Scheduler) runPass(ctx context.Context) {
	passCtx, cancel := context.WithTimeout(ctx, s.passTimeout)
	defer cancel()

	if _, err := s.monitor.RunPass(passCtx); err != nil {
		s.logger.Error("monitoring pass failed", "error", err)
	}
}
