package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

// DNSStore persists a domain's normalized record set. Records live in their
// own table so MX priorities stay distinct rows; the resource_cache row
// carries the freshness metadata.
type DNSStore struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewDNSStore(db *sqlx.DB, tm *TransactionManager) *DNSStore {
	return &DNSStore{db: db, tm: tm}
}

// Replace swaps the full record set for a domain in one transaction.
func (s *DNSStore) Replace(ctx context.Context, domainID int64, records []domain.DNSRecord) error {
	return s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := executor(txCtx, s.db).ExecContext(txCtx,
			`DELETE FROM dns_records WHERE domain_id = $1`, domainID); err != nil {
			return fmt.Errorf("clear dns records: %w", err)
		}

		for _, r := range records {
			_, err := executor(txCtx, s.db).ExecContext(txCtx,
				`INSERT INTO dns_records (domain_id, type, name, value, ttl, priority)
				 VALUES ($1, $2, $3, $4, $5, $6)
				 ON CONFLICT (domain_id, type, name, value, (COALESCE(priority, -1))) DO NOTHING`,
				domainID, r.Type, r.Name, r.Value, r.TTL, r.Priority,
			)
			if err != nil {
				return fmt.Errorf("insert dns record: %w", err)
			}
		}

		return upsertCacheRow(txCtx, s.db, domainID, kindDNS, records, time.Now(), domain.TTLDNS)
	})
}

// GetCached returns the cached record set under the standard freshness
// contract.
func (s *DNSStore) GetCached(ctx context.Context, domainID int64) (domain.Cached[[]domain.DNSRecord], error) {
	return getCached[[]domain.DNSRecord](ctx, s.db, domainID, kindDNS)
}
