package workflow

import (
	"context"
	"time"

	"github.com/jakejarvis/domainstack.io-sub006/internal/changes"
	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
	"github.com/jakejarvis/domainstack.io-sub006/internal/notify"
)

// expiryThresholds are the warning tiers, in days before expiration.
var expiryThresholds = []int{30, 14, 7, 1}

// ExpiryThreshold maps the time remaining until expiresAt to the warning
// tier that applies: the smallest threshold that is still at or above the
// remaining days. More than 30 days out, or already expired, no warning
// applies (expiration itself surfaces as a registration change).
func ExpiryThreshold(now time.Time, expiresAt *time.Time) (int, bool) {
	if expiresAt == nil || !expiresAt.After(now) {
		return 0, false
	}

	days := int(expiresAt.Sub(now).Hours() / 24)
	matched := 0
	found := false
	for _, t := range expiryThresholds {
		if t >= days && (!found || t < matched) {
			matched = t
			found = true
		}
	}
	return matched, found
}

// checkExpiry dispatches the tiered expiry warning. Idempotency comes from
// the dedup key (the expiration date itself): each tier fires once per
// registration period, and a renewal changes the date and re-arms the tiers.
func (s *MonitorService) checkExpiry(ctx context.Context, t domain.TrackedDomain, curr *domain.Snapshot) {
	if curr.Registration == nil || curr.Registration.ExpiresAt == nil {
		return
	}

	tier, ok := ExpiryThreshold(time.Now(), curr.Registration.ExpiresAt)
	if !ok {
		return
	}

	expiresAt := curr.Registration.ExpiresAt.UTC()
	ev := notify.Event{
		Tracked: t,
		Change: changes.ChangeSet{
			Type: domain.ExpiryNotificationType(tier),
			Fields: []changes.FieldChange{{
				Field: "expires_at",
				After: expiresAt.Format(time.RFC3339),
			}},
		},
		DedupKey: expiresAt.Format("2006-01-02"),
	}
	if err := s.notifier.Send(ctx, ev); err != nil {
		s.logger.Error("expiry notification failed",
			"tracked_domain_id", t.ID,
			"tier", tier,
			"error", err,
		)
		return
	}
	s.metrics.ObserveNotification(string(ev.Change.Type))
}
