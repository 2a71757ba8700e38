package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

// Resource kinds stored in resource_cache. DNS records and certificates keep
// their rows in dedicated tables; their resource_cache row only carries the
// freshness metadata.
const (
	kindRegistration = "registration"
	kindDNS          = "dns"
	kindCertificates = "certificates"
	kindHeaders      = "headers"
	kindSEO          = "seo"
	kindFavicon      = "favicon"
)

type cacheRow struct {
	Payload   []byte     `db:"payload"`
	FetchedAt *time.Time `db:"fetched_at"`
	ExpiresAt *time.Time `db:"expires_at"`
}

// upsertCacheRow replaces the cached payload and freshness window for one
// (domain, kind). A nil payload with a non-nil fetchedAt records a confirmed
// negative result, which is distinct from "never checked".
func upsertCacheRow(ctx context.Context, db *sqlx.DB, domainID int64, kind string, payload any, fetchedAt time.Time, ttl time.Duration) error {
	var data any
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", kind, err)
		}
		data = encoded
	}

	query := `
		INSERT INTO resource_cache (domain_id, kind, payload, fetched_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (domain_id, kind) DO UPDATE SET
			payload = EXCLUDED.payload,
			fetched_at = EXCLUDED.fetched_at,
			expires_at = EXCLUDED.expires_at`

	_, err := executor(ctx, db).ExecContext(ctx, query, domainID, kind, data, fetchedAt, fetchedAt.Add(ttl))
	return err
}

// getCached reads one cache row into the 4-field contract. Expired data is
// returned with Stale=true, never dropped, so callers can serve it while a
// background refresh runs.
func getCached[T any](ctx context.Context, db *sqlx.DB, domainID int64, kind string) (domain.Cached[T], error) {
	var row cacheRow
	err := sqlx.GetContext(ctx, executor(ctx, db), &row,
		`SELECT payload, fetched_at, expires_at FROM resource_cache WHERE domain_id = $1 AND kind = $2`,
		domainID, kind,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Cached[T]{}, nil
	}
	if err != nil {
		return domain.Cached[T]{}, fmt.Errorf("get cached %s: %w", kind, err)
	}

	cached := domain.Cached[T]{
		FetchedAt: row.FetchedAt,
		ExpiresAt: row.ExpiresAt,
	}
	if row.Payload != nil {
		var data T
		if err := json.Unmarshal(row.Payload, &data); err != nil {
			return domain.Cached[T]{}, fmt.Errorf("decode cached %s: %w", kind, err)
		}
		cached.Data = &data
	}
	if row.ExpiresAt != nil && row.ExpiresAt.Before(time.Now()) {
		cached.Stale = true
	}
	return cached, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
