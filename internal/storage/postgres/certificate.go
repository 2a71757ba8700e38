package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

// CertificateStore persists TLS chains. A chain is replaced atomically on
// every refresh, never merged field by field: a stale entry mixed with fresh
// ones is a correctness hazard.
type CertificateStore struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewCertificateStore(db *sqlx.DB, tm *TransactionManager) *CertificateStore {
	return &CertificateStore{db: db, tm: tm}
}

// Replace deletes and re-inserts the whole chain in one transaction, leaf
// first.
func (s *CertificateStore) Replace(ctx context.Context, domainID int64, chain []domain.Certificate) error {
	return s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := executor(txCtx, s.db).ExecContext(txCtx,
			`DELETE FROM certificates WHERE domain_id = $1`, domainID); err != nil {
			return fmt.Errorf("clear certificates: %w", err)
		}

		for i, cert := range chain {
			_, err := executor(txCtx, s.db).ExecContext(txCtx,
				`INSERT INTO certificates
				 (domain_id, position, issuer, subject, alt_names, valid_from, valid_to, ca_provider_id, self_signed)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				domainID, i, cert.Issuer, cert.Subject, pq.Array(cert.AltNames),
				cert.ValidFrom, cert.ValidTo, cert.CAProviderID, cert.SelfSigned,
			)
			if err != nil {
				return fmt.Errorf("insert certificate %d: %w", i, err)
			}
		}

		return upsertCacheRow(txCtx, s.db, domainID, kindCertificates, chain, time.Now(), domain.TTLCertificates)
	})
}

func (s *CertificateStore) GetCached(ctx context.Context, domainID int64) (domain.Cached[[]domain.Certificate], error) {
	return getCached[[]domain.Certificate](ctx, s.db, domainID, kindCertificates)
}
