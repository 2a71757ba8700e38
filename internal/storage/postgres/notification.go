package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

// NotificationStore is the append-only delivery ledger. The unique constraint
// on (tracked_domain_id, type, dedup_key) is the idempotency backstop against
// duplicate sends from at-least-once workflow retries.
type NotificationStore struct {
	db *sqlx.DB
}

func NewNotificationStore(db *sqlx.DB) *NotificationStore {
	return &NotificationStore{db: db}
}

// Insert records the notification. The second return value is false when an
// identical notification already exists, in which case n.ID and n.MessageID
// are filled from the existing row and no new row is created. A nil MessageID
// on the existing row tells the caller the email never went out.
func (s *NotificationStore) Insert(ctx context.Context, n *domain.Notification) (bool, error) {
	err := executor(ctx, s.db).QueryRowxContext(ctx,
		`INSERT INTO notifications (tracked_domain_id, type, dedup_key, channels)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (tracked_domain_id, type, dedup_key) DO NOTHING
		 RETURNING id`,
		n.TrackedDomainID, n.Type, n.DedupKey, pq.Array(n.Channels),
	).Scan(&n.ID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("insert notification: %w", err)
	}

	err = executor(ctx, s.db).QueryRowxContext(ctx,
		`SELECT id, message_id FROM notifications WHERE tracked_domain_id = $1 AND type = $2 AND dedup_key = $3`,
		n.TrackedDomainID, n.Type, n.DedupKey,
	).Scan(&n.ID, &n.MessageID)
	if err != nil {
		return false, fmt.Errorf("re-read notification: %w", err)
	}
	return false, nil
}

// SetMessageID stores the email channel's message id after a successful send.
func (s *NotificationStore) SetMessageID(ctx context.Context, id int64, messageID string) error {
	_, err := executor(ctx, s.db).ExecContext(ctx,
		`UPDATE notifications SET message_id = $1 WHERE id = $2`, messageID, id)
	if err != nil {
		return fmt.Errorf("set message id: %w", err)
	}
	return nil
}

// Exists reports whether any notification of the given type was ever recorded
// for a tracked domain, regardless of dedup key.
func (s *NotificationStore) Exists(ctx context.Context, trackedDomainID int64, typ domain.NotificationType) (bool, error) {
	var exists bool
	err := executor(ctx, s.db).QueryRowxContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM notifications WHERE tracked_domain_id = $1 AND type = $2)`,
		trackedDomainID, typ,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check notification exists: %w", err)
	}
	return exists, nil
}
