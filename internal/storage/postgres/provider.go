package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
	"github.com/jakejarvis/domainstack.io-sub006/internal/providers"
)

// CatalogProvider is a curated provider definition being synced into the
// providers table.
type CatalogProvider struct {
	Category domain.ProviderCategory
	Name     string
	Domain   string
	Rule     providers.Rule
}

// ProviderStore resolves provider identities to stable row IDs and keeps the
// curated catalog merged with lazily discovered providers.
type ProviderStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewProviderStore(db *sqlx.DB, logger *slog.Logger) *ProviderStore {
	return &ProviderStore{db: db, logger: logger.With("component", "provider_store")}
}

// ResolveOrCreate maps a provider name/domain to a row ID: exact lowercased
// domain match first, then case-insensitive name, preferring catalog source
// and recency on ties; otherwise a new discovered provider is inserted. A
// concurrent insert of the same slug is resolved by re-resolving, never
// surfaced to the caller.
func (s *ProviderStore) ResolveOrCreate(ctx context.Context, params providers.ResolveParams) (int64, error) {
	return s.resolveOrCreate(ctx, params, true)
}

func (s *ProviderStore) resolveOrCreate(ctx context.Context, params providers.ResolveParams, retryOnRace bool) (int64, error) {
	if params.Name == "" && params.Domain == "" {
		return 0, fmt.Errorf("resolve provider: empty identity")
	}

	const tieBreak = `ORDER BY (source = 'catalog') DESC, updated_at DESC LIMIT 1`

	if params.Domain != "" {
		var id int64
		err := executor(ctx, s.db).QueryRowxContext(ctx,
			`SELECT id FROM providers WHERE category = $1 AND lower(domain) = lower($2) `+tieBreak,
			params.Category, params.Domain,
		).Scan(&id)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("resolve provider by domain: %w", err)
		}
	}

	name := params.Name
	if name == "" {
		name = params.Domain
	}

	var id int64
	err := executor(ctx, s.db).QueryRowxContext(ctx,
		`SELECT id FROM providers WHERE category = $1 AND lower(name) = lower($2) `+tieBreak,
		params.Category, name,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("resolve provider by name: %w", err)
	}

	var providerDomain any
	if params.Domain != "" {
		providerDomain = params.Domain
	}

	err = executor(ctx, s.db).QueryRowxContext(ctx,
		`INSERT INTO providers (category, name, domain, slug, source)
		 VALUES ($1, $2, $3, $4, 'discovered')
		 RETURNING id`,
		params.Category, name, providerDomain, domain.Slugify(name),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) && retryOnRace {
			// Lost the insert race to a concurrent caller.
			return s.resolveOrCreate(ctx, params, false)
		}
		return 0, fmt.Errorf("insert discovered provider: %w", err)
	}
	return id, nil
}

// UpsertCatalog syncs one curated entry, in three tiers: an exact
// (category, slug) hit is upgraded or updated in place; otherwise existing
// discovered providers in the category are tested against the entry's own
// rule via a synthetic detection context and the first match is promoted in
// place, preserving its row ID so foreign keys from hosting and certificate
// data stay valid; otherwise a fresh catalog row is inserted. Races on the
// unique constraint are resolved by re-reading.
func (s *ProviderStore) UpsertCatalog(ctx context.Context, cat CatalogProvider) (int64, error) {
	slug := domain.Slugify(cat.Name)

	var providerDomain any
	if cat.Domain != "" {
		providerDomain = cat.Domain
	}

	// Tier 1: slug already known.
	var existing domain.Provider
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &existing,
		`SELECT id, category, name, domain, slug, source, updated_at
		 FROM providers WHERE category = $1 AND slug = $2`,
		cat.Category, slug,
	)
	if err == nil {
		sameDomain := (existing.Domain == nil && cat.Domain == "") ||
			(existing.Domain != nil && *existing.Domain == cat.Domain)
		if existing.Source == domain.SourceCatalog && existing.Name == cat.Name && sameDomain {
			return existing.ID, nil
		}
		_, err = executor(ctx, s.db).ExecContext(ctx,
			`UPDATE providers SET name = $1, domain = $2, source = 'catalog', updated_at = now() WHERE id = $3`,
			cat.Name, providerDomain, existing.ID,
		)
		if err != nil {
			return 0, fmt.Errorf("upgrade provider %d: %w", existing.ID, err)
		}
		return existing.ID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("lookup catalog provider: %w", err)
	}

	// Tier 2: the entry's rule may retroactively match a discovered provider
	// created before this catalog entry existed. First match wins.
	if cat.Rule != nil {
		var discovered []domain.Provider
		err = sqlx.SelectContext(ctx, executor(ctx, s.db), &discovered,
			`SELECT id, category, name, domain, slug, source, updated_at
			 FROM providers WHERE category = $1 AND source = 'discovered'
			 ORDER BY id`,
			cat.Category,
		)
		if err != nil {
			return 0, fmt.Errorf("scan discovered providers: %w", err)
		}

		for _, p := range discovered {
			var pDomain string
			if p.Domain != nil {
				pDomain = *p.Domain
			}
			if !cat.Rule.Match(providers.SyntheticContext(cat.Category, p.Name, pDomain)) {
				continue
			}

			_, err = executor(ctx, s.db).ExecContext(ctx,
				`UPDATE providers SET name = $1, domain = $2, slug = $3, source = 'catalog', updated_at = now() WHERE id = $4`,
				cat.Name, providerDomain, slug, p.ID,
			)
			if err != nil {
				if isUniqueViolation(err) {
					break // someone inserted the slug concurrently, fall through to re-read
				}
				return 0, fmt.Errorf("promote provider %d: %w", p.ID, err)
			}
			s.logger.Info("promoted discovered provider to catalog",
				"provider_id", p.ID,
				"category", cat.Category,
				"name", cat.Name,
			)
			return p.ID, nil
		}
	}

	// Tier 3: brand new catalog row.
	var id int64
	err = executor(ctx, s.db).QueryRowxContext(ctx,
		`INSERT INTO providers (category, name, domain, slug, source)
		 VALUES ($1, $2, $3, $4, 'catalog')
		 RETURNING id`,
		cat.Category, cat.Name, providerDomain, slug,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			err = executor(ctx, s.db).QueryRowxContext(ctx,
				`SELECT id FROM providers WHERE category = $1 AND slug = $2`,
				cat.Category, slug,
			).Scan(&id)
			if err != nil {
				return 0, fmt.Errorf("re-read catalog provider after race: %w", err)
			}
			return id, nil
		}
		return 0, fmt.Errorf("insert catalog provider: %w", err)
	}
	return id, nil
}
