package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jakejarvis/domainstack.io-sub006/internal/changes"
	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
	"github.com/jakejarvis/domainstack.io-sub006/internal/metrics"
	"github.com/jakejarvis/domainstack.io-sub006/internal/notify"
)

// MonitorConfig bounds one monitoring pass.
type MonitorConfig struct {
	Interval    time.Duration // minimum spacing between checks of one domain
	BatchSize   int
	Concurrency int
}

func (c MonitorConfig) withDefaults() MonitorConfig {
	if c.Interval == 0 {
		c.Interval = 6 * time.Hour
	}
	if c.BatchSize == 0 {
		c.BatchSize = 100
	}
	if c.Concurrency == 0 {
		c.Concurrency = 8
	}
	return c
}

// PassStats summarizes one monitoring pass.
type PassStats struct {
	Checked  int
	Changed  int
	Errors   int
	Duration time.Duration
}

// MonitorService runs the recurring change-detection pass over verified
// tracked domains: re-fetch, diff against the notified baseline, notify,
// and only then advance the baseline.
type MonitorService struct {
	tracked   TrackedStore
	snapshots SnapshotStore
	state     StateFetcher
	notifier  Notifier
	metrics   *metrics.Metrics
	logger    *slog.Logger
	cfg       MonitorConfig
}

func NewMonitorService(
	tracked TrackedStore,
	snapshots SnapshotStore,
	state StateFetcher,
	notifier Notifier,
	m *metrics.Metrics,
	logger *slog.Logger,
	cfg MonitorConfig,
) *MonitorService {
	return &MonitorService{
		tracked:   tracked,
		snapshots: snapshots,
		state:     state,
		notifier:  notifier,
		metrics:   m,
		logger:    logger.With("component", "monitor"),
		cfg:       cfg.withDefaults(),
	}
}

// RunPass checks every due tracked domain with bounded concurrency. Per-domain
// failures are counted, not propagated: one broken domain must not starve the
// rest of the batch.
func (s *MonitorService) RunPass(ctx context.Context) (*PassStats, error) {
	startTime := time.Now()

	due, err := s.tracked.ListDue(ctx, startTime.Add(-s.cfg.Interval), s.cfg.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("list due tracked domains: %w", err)
	}

	s.logger.Info("starting monitoring pass", "due", len(due))

	stats := &PassStats{Checked: len(due)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)
	for _, t := range due {
		g.Go(func() error {
			changed, err := s.Check(gctx, t)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				stats.Errors++
				s.metrics.ObserveCheck("error")
				s.logger.Error("check failed",
					"tracked_domain_id", t.ID,
					"domain", t.DomainName,
					"error", err,
				)
				return nil
			}
			if changed {
				stats.Changed++
				s.metrics.ObserveCheck("changed")
			} else {
				s.metrics.ObserveCheck("unchanged")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}

	stats.Duration = time.Since(startTime)
	s.logger.Info("monitoring pass completed",
		"checked", stats.Checked,
		"changed", stats.Changed,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)
	return stats, nil
}

// Check re-fetches one tracked domain and dispatches notifications for every
// detected difference. The baseline snapshot advances only after all change
// notifications went through, so a failed send is retried next pass instead
// of being lost.
func (s *MonitorService) Check(ctx context.Context, t domain.TrackedDomain) (bool, error) {
	prev, err := s.snapshots.Get(ctx, t.ID)
	if err != nil {
		return false, err
	}

	curr, err := s.state.CurrentState(ctx, t)
	if err != nil {
		return false, fmt.Errorf("fetch current state: %w", err)
	}

	if prev == nil {
		// First pass establishes the baseline silently.
		if err := s.snapshots.Save(ctx, curr); err != nil {
			return false, fmt.Errorf("save baseline snapshot: %w", err)
		}
		s.touch(ctx, t.ID)
		return false, nil
	}

	var sets []*changes.ChangeSet
	sets = append(sets, changes.DetectRegistrationChanges(prev.Registration, curr.Registration))
	sets = append(sets, changes.DetectProviderChanges(prev, curr))
	sets = append(sets, changes.DetectCertificateChanges(prev.Certificate, curr.Certificate))

	changed := false
	sendFailed := false
	for _, cs := range sets {
		if cs == nil {
			continue
		}
		changed = true
		if err := s.notifier.Send(ctx, notify.Event{Tracked: t, Change: *cs}); err != nil {
			sendFailed = true
			s.logger.Error("notification failed",
				"tracked_domain_id", t.ID,
				"type", cs.Type,
				"error", err,
			)
			continue
		}
		s.metrics.ObserveNotification(string(cs.Type))
	}

	s.checkExpiry(ctx, t, curr)

	if !sendFailed {
		if err := s.snapshots.Save(ctx, curr); err != nil {
			return changed, fmt.Errorf("save snapshot: %w", err)
		}
	}
	s.touch(ctx, t.ID)
	return changed, nil
}

func (s *MonitorService) touch(ctx context.Context, id int64) {
	if err := s.tracked.Touch(ctx, id); err != nil {
		s.logger.Warn("touch tracked domain failed", "tracked_domain_id", id, "error", err)
	}
}
