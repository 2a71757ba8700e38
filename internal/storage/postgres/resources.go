package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

// HeaderStore caches the security-relevant response headers of a domain.
type HeaderStore struct {
	db *sqlx.DB
}

func NewHeaderStore(db *sqlx.DB) *HeaderStore {
	return &HeaderStore{db: db}
}

func (s *HeaderStore) Upsert(ctx context.Context, domainID int64, headers domain.Headers) error {
	return upsertCacheRow(ctx, s.db, domainID, kindHeaders, headers, time.Now(), domain.TTLHeaders)
}

func (s *HeaderStore) GetCached(ctx context.Context, domainID int64) (domain.Cached[domain.Headers], error) {
	return getCached[domain.Headers](ctx, s.db, domainID, kindHeaders)
}

// SEOStore caches parsed HTML/robots metadata.
type SEOStore struct {
	db *sqlx.DB
}

func NewSEOStore(db *sqlx.DB) *SEOStore {
	return &SEOStore{db: db}
}

func (s *SEOStore) Upsert(ctx context.Context, domainID int64, seo *domain.SEO) error {
	return upsertCacheRow(ctx, s.db, domainID, kindSEO, seo, time.Now(), domain.TTLSEO)
}

func (s *SEOStore) GetCached(ctx context.Context, domainID int64) (domain.Cached[domain.SEO], error) {
	return getCached[domain.SEO](ctx, s.db, domainID, kindSEO)
}

// FaviconStore caches the derived favicon URL. A confirmed-absent favicon is
// stored as a row with a nil payload so it is not re-fetched on every access,
// while a domain that was never checked has no row at all.
type FaviconStore struct {
	db *sqlx.DB
}

func NewFaviconStore(db *sqlx.DB) *FaviconStore {
	return &FaviconStore{db: db}
}

func (s *FaviconStore) Upsert(ctx context.Context, domainID int64, url *string) error {
	var payload any
	if url != nil {
		payload = url
	}
	return upsertCacheRow(ctx, s.db, domainID, kindFavicon, payload, time.Now(), domain.TTLFavicon)
}

func (s *FaviconStore) GetCached(ctx context.Context, domainID int64) (domain.Cached[string], error) {
	return getCached[string](ctx, s.db, domainID, kindFavicon)
}
