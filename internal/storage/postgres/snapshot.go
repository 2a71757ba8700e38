package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

// SnapshotStore keeps the change-detection baseline per tracked domain. The
// monitor workflow writes it only after a detected change was successfully
// notified; a bare re-fetch never touches it.
type SnapshotStore struct {
	db *sqlx.DB
}

func NewSnapshotStore(db *sqlx.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

func (s *SnapshotStore) Get(ctx context.Context, trackedDomainID int64) (*domain.Snapshot, error) {
	var row struct {
		Payload   []byte    `db:"payload"`
		UpdatedAt time.Time `db:"updated_at"`
	}
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &row,
		`SELECT payload, updated_at FROM snapshots WHERE tracked_domain_id = $1`,
		trackedDomainID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(row.Payload, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	snap.TrackedDomainID = trackedDomainID
	snap.UpdatedAt = row.UpdatedAt
	return &snap, nil
}

func (s *SnapshotStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = executor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO snapshots (tracked_domain_id, payload, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (tracked_domain_id) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = now()`,
		snap.TrackedDomainID, payload)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
