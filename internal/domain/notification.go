package domain

import (
	"fmt"
	"time"
)

// NotificationType classifies a user-facing notification.
type NotificationType string

const (
	NotifyRegistrationChanged NotificationType = "registration_changed"
	NotifyProvidersChanged    NotificationType = "providers_changed"
	NotifyCertificateChanged  NotificationType = "certificate_changed"
)

// ExpiryNotificationType returns the type for an expiry warning at the given
// threshold, e.g. domain_expiry_30d.
func ExpiryNotificationType(days int) NotificationType {
	return NotificationType(fmt.Sprintf("domain_expiry_%dd", days))
}

// Notification is an append-only delivery record. Uniqueness on
// (tracked_domain_id, type, dedup_key) is the idempotency backstop against
// duplicate sends under at-least-once workflow retries.
type Notification struct {
	ID              int64            `db:"id"`
	TrackedDomainID int64            `db:"tracked_domain_id"`
	Type            NotificationType `db:"type"`
	DedupKey        string           `db:"dedup_key"`
	Channels        []string         `db:"-"`
	MessageID       *string          `db:"message_id"` // email channel message id, if sent
	CreatedAt       time.Time        `db:"created_at"`
}
