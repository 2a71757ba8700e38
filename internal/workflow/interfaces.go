package workflow

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
	"github.com/jakejarvis/domainstack.io-sub006/internal/lookup"
	"github.com/jakejarvis/domainstack.io-sub006/internal/netguard"
	"github.com/jakejarvis/domainstack.io-sub006/internal/notify"
	"github.com/jakejarvis/domainstack.io-sub006/internal/providers"
)

type DomainStore interface {
	Upsert(ctx context.Context, rawName string) (int64, error)
}

type RegistrationStore interface {
	Upsert(ctx context.Context, domainID int64, reg *domain.Registration) error
	GetCached(ctx context.Context, domainID int64) (domain.Cached[domain.Registration], error)
}

type DNSStore interface {
	Replace(ctx context.Context, domainID int64, records []domain.DNSRecord) error
	GetCached(ctx context.Context, domainID int64) (domain.Cached[[]domain.DNSRecord], error)
}

type CertificateStore interface {
	Replace(ctx context.Context, domainID int64, chain []domain.Certificate) error
	GetCached(ctx context.Context, domainID int64) (domain.Cached[[]domain.Certificate], error)
}

type HeaderStore interface {
	Upsert(ctx context.Context, domainID int64, headers domain.Headers) error
	GetCached(ctx context.Context, domainID int64) (domain.Cached[domain.Headers], error)
}

type SEOStore interface {
	Upsert(ctx context.Context, domainID int64, seo *domain.SEO) error
	GetCached(ctx context.Context, domainID int64) (domain.Cached[domain.SEO], error)
}

type FaviconStore interface {
	Upsert(ctx context.Context, domainID int64, url *string) error
	GetCached(ctx context.Context, domainID int64) (domain.Cached[string], error)
}

type TrackedStore interface {
	ListDue(ctx context.Context, olderThan time.Time, limit int) ([]domain.TrackedDomain, error)
	Touch(ctx context.Context, id int64) error
}

type SnapshotStore interface {
	Get(ctx context.Context, trackedDomainID int64) (*domain.Snapshot, error)
	Save(ctx context.Context, snap *domain.Snapshot) error
}

type Notifier interface {
	Send(ctx context.Context, ev notify.Event) error
}

// StateFetcher produces the current comparable state of a tracked domain,
// bypassing cache freshness.
type StateFetcher interface {
	CurrentState(ctx context.Context, tracked domain.TrackedDomain) (*domain.Snapshot, error)
}

type RegistrationLookup interface {
	Lookup(ctx context.Context, name string) (*domain.Registration, error)
}

type DNSLookup interface {
	Lookup(ctx context.Context, name string) ([]domain.DNSRecord, error)
}

type CertificateLookup interface {
	Lookup(ctx context.Context, name string) (*lookup.CertResult, error)
}

type HeadersLookup interface {
	Lookup(ctx context.Context, name string) (*lookup.HeadersResult, error)
}

type SEOLookup interface {
	Lookup(ctx context.Context, name string) (*lookup.SEOResult, error)
}

type FaviconLookup interface {
	Lookup(ctx context.Context, name string) (*lookup.FaviconResult, error)
}

type ProviderDetector interface {
	DetectHosting(ctx context.Context, dctx providers.DetectionContext) (*int64, error)
	DetectEmail(ctx context.Context, dctx providers.DetectionContext) (*int64, error)
	DetectDNS(ctx context.Context, dctx providers.DetectionContext) (*int64, error)
	DetectCA(ctx context.Context, issuer string) (*int64, error)
}

type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, opts netguard.Options) (*netguard.Result, error)
}

type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
