package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

// RegistrationStore caches normalized WHOIS/RDAP results. Unregistered
// domains are never persisted here; the caller decides that before writing.
type RegistrationStore struct {
	db *sqlx.DB
}

func NewRegistrationStore(db *sqlx.DB) *RegistrationStore {
	return &RegistrationStore{db: db}
}

// Upsert replaces the cached registration with an expiry-aware TTL: the
// closer the real expiration, the shorter the cache window.
func (s *RegistrationStore) Upsert(ctx context.Context, domainID int64, reg *domain.Registration) error {
	now := time.Now()
	return upsertCacheRow(ctx, s.db, domainID, kindRegistration, reg, now, domain.RegistrationTTL(now, reg.ExpiresAt))
}

func (s *RegistrationStore) GetCached(ctx context.Context, domainID int64) (domain.Cached[domain.Registration], error) {
	return getCached[domain.Registration](ctx, s.db, domainID, kindRegistration)
}
