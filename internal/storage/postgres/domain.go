package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

// DomainStore persists registrable domains. A domain row appears on the first
// lookup of any kind and its last_accessed_at is touched on every access.
type DomainStore struct {
	db *sqlx.DB
}

func NewDomainStore(db *sqlx.DB) *DomainStore {
	return &DomainStore{db: db}
}

// Upsert canonicalizes the name and creates or touches the domain row,
// returning its ID.
func (s *DomainStore) Upsert(ctx context.Context, rawName string) (int64, error) {
	name, tld, unicode, err := domain.Canonicalize(rawName)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO domains (name, tld, unicode_name, last_accessed_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (name) DO UPDATE SET
			last_accessed_at = now(),
			updated_at = now()
		RETURNING id`

	var id int64
	if err := executor(ctx, s.db).QueryRowxContext(ctx, query, name, tld, unicode).Scan(&id); err != nil {
		return 0, fmt.Errorf("upsert domain %q: %w", name, err)
	}
	return id, nil
}

// Get returns a domain by canonical name, or nil when unknown.
func (s *DomainStore) Get(ctx context.Context, name string) (*domain.Domain, error) {
	var d domain.Domain
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &d,
		`SELECT id, name, tld, unicode_name, last_accessed_at, created_at, updated_at
		 FROM domains WHERE name = $1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get domain %q: %w", name, err)
	}
	return &d, nil
}
