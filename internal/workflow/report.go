package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jakejarvis/domainstack.io-sub006/internal/changes"
	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
	"github.com/jakejarvis/domainstack.io-sub006/internal/lookup"
	"github.com/jakejarvis/domainstack.io-sub006/internal/metrics"
	"github.com/jakejarvis/domainstack.io-sub006/internal/netguard"
	"github.com/jakejarvis/domainstack.io-sub006/internal/providers"
	"github.com/jakejarvis/domainstack.io-sub006/internal/socialcard"
)

// Report is the assembled state of one domain. Sections are independent:
// a failed refresh leaves its section on the last cached value (marked
// stale) or empty, never fails the whole report.
type Report struct {
	Domain   string
	DomainID int64

	Registration domain.Cached[domain.Registration]
	DNS          domain.Cached[[]domain.DNSRecord]
	Certificates domain.Cached[[]domain.Certificate]
	Headers      domain.Cached[domain.Headers]
	SEO          domain.Cached[domain.SEO]
	Favicon      domain.Cached[string]
	Hosting      domain.Hosting
}

// ReportDeps bundles the stores and lookup clients the report service
// composes.
type ReportDeps struct {
	Domains       DomainStore
	Registrations RegistrationStore
	DNS           DNSStore
	Certificates  CertificateStore
	Headers       HeaderStore
	SEO           SEOStore
	Favicons      FaviconStore

	RegistrationLookup RegistrationLookup
	DNSLookup          DNSLookup
	CertLookup         CertificateLookup
	HeadersLookup      HeadersLookup
	SEOLookup          SEOLookup
	FaviconLookup      FaviconLookup

	Detector ProviderDetector
	Fetch    Fetcher
	Blobs    BlobStore
}

// ReportService assembles domain reports with a stale-while-revalidate cache
// strategy: fresh cache rows are served as is, stale or missing ones trigger
// a refresh, and a failed refresh falls back to the stale value.
type ReportService struct {
	deps    ReportDeps
	runner  *Runner
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewReportService(deps ReportDeps, runner *Runner, m *metrics.Metrics, logger *slog.Logger) *ReportService {
	return &ReportService{
		deps:    deps,
		runner:  runner,
		metrics: m,
		logger:  logger.With("component", "report"),
	}
}

// Report builds the full report for a domain, fetching all resource kinds
// concurrently. force bypasses cache freshness for every section.
func (s *ReportService) Report(ctx context.Context, rawName string, force bool) (*Report, error) {
	name, _, _, err := domain.Canonicalize(rawName)
	if err != nil {
		return nil, fmt.Errorf("canonicalize %q: %w", rawName, err)
	}

	domainID, err := s.deps.Domains.Upsert(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("upsert domain: %w", err)
	}

	rep := &Report{Domain: name, DomainID: domainID}
	var headersRaw http.Header

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rep.Registration = s.registration(gctx, domainID, name, force)
		return nil
	})
	g.Go(func() error {
		rep.DNS = s.dnsRecords(gctx, domainID, name, force)
		return nil
	})
	g.Go(func() error {
		rep.Certificates = s.certificates(gctx, domainID, name, force)
		return nil
	})
	g.Go(func() error {
		rep.Headers, headersRaw = s.headers(gctx, domainID, name, force)
		return nil
	})
	g.Go(func() error {
		rep.SEO = s.seo(gctx, domainID, name, force)
		return nil
	})
	g.Go(func() error {
		rep.Favicon = s.favicon(gctx, domainID, name, force)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep.Hosting = s.detectProviders(ctx, rep, headersRaw)
	return rep, nil
}

// CurrentState builds a force-refreshed report and projects it onto the
// change-detection snapshot shape.
func (s *ReportService) CurrentState(ctx context.Context, tracked domain.TrackedDomain) (*domain.Snapshot, error) {
	rep, err := s.Report(ctx, tracked.DomainName, true)
	if err != nil {
		return nil, err
	}

	snap := &domain.Snapshot{
		TrackedDomainID:   tracked.ID,
		DNSProviderID:     rep.Hosting.DNSProviderID,
		HostingProviderID: rep.Hosting.HostingProviderID,
		EmailProviderID:   rep.Hosting.EmailProviderID,
		UpdatedAt:         time.Now().UTC(),
	}
	snap.Registration = changes.RegistrationSnapshot(rep.Registration.Data)
	if rep.Certificates.Data != nil {
		snap.Certificate = changes.CertificateSnapshot(*rep.Certificates.Data)
	}
	return snap, nil
}

func (s *ReportService) registration(ctx context.Context, domainID int64, name string, force bool) domain.Cached[domain.Registration] {
	cached := readCache(s, "registration", func() (domain.Cached[domain.Registration], error) {
		return s.deps.Registrations.GetCached(ctx, domainID)
	})
	if cached.Fresh() && !force {
		return cached
	}

	var reg *domain.Registration
	err := s.refresh(ctx, "registration", name, func(ctx context.Context) error {
		r, lerr := s.deps.RegistrationLookup.Lookup(ctx, name)
		if lerr != nil {
			return classify(lerr)
		}
		reg = r
		return nil
	})
	if err != nil {
		return cached
	}

	// Unregistered domains are not cached: the RDAP 404 is cheap and a
	// registration can appear at any moment.
	if reg.Registered {
		if err := s.deps.Registrations.Upsert(ctx, domainID, reg); err != nil {
			s.logger.Error("store registration failed", "domain", name, "error", err)
		}
	}
	return freshNow(reg)
}

func (s *ReportService) dnsRecords(ctx context.Context, domainID int64, name string, force bool) domain.Cached[[]domain.DNSRecord] {
	cached := readCache(s, "dns", func() (domain.Cached[[]domain.DNSRecord], error) {
		return s.deps.DNS.GetCached(ctx, domainID)
	})
	if cached.Fresh() && !force {
		return cached
	}

	var records []domain.DNSRecord
	err := s.refresh(ctx, "dns", name, func(ctx context.Context) error {
		recs, lerr := s.deps.DNSLookup.Lookup(ctx, name)
		if lerr != nil {
			return classify(lerr)
		}
		records = recs
		return nil
	})
	if err != nil {
		return cached
	}

	if err := s.deps.DNS.Replace(ctx, domainID, records); err != nil {
		s.logger.Error("store dns records failed", "domain", name, "error", err)
	}
	return freshNow(&records)
}

func (s *ReportService) certificates(ctx context.Context, domainID int64, name string, force bool) domain.Cached[[]domain.Certificate] {
	cached := readCache(s, "certificates", func() (domain.Cached[[]domain.Certificate], error) {
		return s.deps.Certificates.GetCached(ctx, domainID)
	})
	if cached.Fresh() && !force {
		return cached
	}

	var result *lookup.CertResult
	err := s.refresh(ctx, "certificates", name, func(ctx context.Context) error {
		res, lerr := s.deps.CertLookup.Lookup(ctx, name)
		if lerr != nil {
			return classify(lerr)
		}
		result = res
		return nil
	})
	if err != nil {
		return cached
	}

	if result.Status != lookup.CertOK {
		// Unreachable or broken TLS keeps whatever chain we knew about.
		s.logger.Debug("certificate lookup degraded",
			"domain", name, "status", result.Status, "detail", result.Detail)
		return cached
	}

	chain := result.Chain
	if len(chain) > 0 {
		if id, err := s.deps.Detector.DetectCA(ctx, chain[0].Issuer); err != nil {
			s.logger.Warn("ca attribution failed", "domain", name, "error", err)
		} else {
			chain[0].CAProviderID = id
		}
	}

	if err := s.deps.Certificates.Replace(ctx, domainID, chain); err != nil {
		s.logger.Error("store certificates failed", "domain", name, "error", err)
	}
	return freshNow(&chain)
}

func (s *ReportService) headers(ctx context.Context, domainID int64, name string, force bool) (domain.Cached[domain.Headers], http.Header) {
	cached := readCache(s, "headers", func() (domain.Cached[domain.Headers], error) {
		return s.deps.Headers.GetCached(ctx, domainID)
	})
	if cached.Fresh() && !force {
		return cached, nil
	}

	var result *lookup.HeadersResult
	err := s.refresh(ctx, "headers", name, func(ctx context.Context) error {
		res, lerr := s.deps.HeadersLookup.Lookup(ctx, name)
		if lerr != nil {
			return classify(lerr)
		}
		result = res
		return nil
	})
	if err != nil {
		return cached, nil
	}

	if err := s.deps.Headers.Upsert(ctx, domainID, result.Headers); err != nil {
		s.logger.Error("store headers failed", "domain", name, "error", err)
	}
	return freshNow(&result.Headers), result.Raw
}

func (s *ReportService) seo(ctx context.Context, domainID int64, name string, force bool) domain.Cached[domain.SEO] {
	cached := readCache(s, "seo", func() (domain.Cached[domain.SEO], error) {
		return s.deps.SEO.GetCached(ctx, domainID)
	})
	if cached.Fresh() && !force {
		return cached
	}

	var result *lookup.SEOResult
	err := s.refresh(ctx, "seo", name, func(ctx context.Context) error {
		res, lerr := s.deps.SEOLookup.Lookup(ctx, name)
		if lerr != nil {
			return classify(lerr)
		}
		result = res
		return nil
	})
	if err != nil {
		return cached
	}

	seo := result.SEO
	if result.PreviewImage != "" {
		if url, ok := s.previewCard(ctx, name, result.PreviewImage); ok {
			seo.PreviewImageURL = url
		}
	}

	if err := s.deps.SEO.Upsert(ctx, domainID, &seo); err != nil {
		s.logger.Error("store seo failed", "domain", name, "error", err)
	}
	return freshNow(&seo)
}

// previewCard fetches the page's preview image, renders it into the fixed
// card size and re-hosts it. Any failure degrades to a card-less page.
func (s *ReportService) previewCard(ctx context.Context, name, imageURL string) (string, bool) {
	res, err := s.deps.Fetch.Fetch(ctx, imageURL, netguard.Options{
		Method:   http.MethodGet,
		MaxBytes: 8 << 20,
	})
	if err != nil || !res.OK {
		s.logger.Debug("preview image fetch failed", "domain", name, "error", err)
		return "", false
	}

	card, err := socialcard.Render(res.Body)
	if err != nil {
		s.logger.Debug("preview card render failed", "domain", name, "error", err)
		return "", false
	}

	url, err := s.deps.Blobs.Put(ctx, "cards/"+name+".jpg", card, "image/jpeg")
	if err != nil {
		s.logger.Warn("preview card upload failed", "domain", name, "error", err)
		return "", false
	}
	return url, true
}

func (s *ReportService) favicon(ctx context.Context, domainID int64, name string, force bool) domain.Cached[string] {
	cached := readCache(s, "favicon", func() (domain.Cached[string], error) {
		return s.deps.Favicons.GetCached(ctx, domainID)
	})
	// A confirmed-absent favicon row (nil data, unexpired) is fresh too.
	if !force && (cached.Fresh() || (cached.FetchedAt != nil && !cached.Stale)) {
		return cached
	}

	var result *lookup.FaviconResult
	err := s.refresh(ctx, "favicon", name, func(ctx context.Context) error {
		res, lerr := s.deps.FaviconLookup.Lookup(ctx, name)
		if lerr != nil {
			return classify(lerr)
		}
		result = res
		return nil
	})
	if err != nil {
		return cached
	}

	if result == nil {
		if err := s.deps.Favicons.Upsert(ctx, domainID, nil); err != nil {
			s.logger.Error("store favicon absence failed", "domain", name, "error", err)
		}
		now := time.Now()
		return domain.Cached[string]{FetchedAt: &now}
	}

	url, err := s.deps.Blobs.Put(ctx, "favicons/"+name+faviconExt(result.ContentType), result.Body, result.ContentType)
	if err != nil {
		s.logger.Warn("favicon upload failed", "domain", name, "error", err)
		return cached
	}

	if err := s.deps.Favicons.Upsert(ctx, domainID, &url); err != nil {
		s.logger.Error("store favicon failed", "domain", name, "error", err)
	}
	return freshNow(&url)
}

// detectProviders attributes the fetched signals after the concurrent joins:
// hosting needs headers, email needs MX hosts, DNS needs NS hosts.
func (s *ReportService) detectProviders(ctx context.Context, rep *Report, headersRaw http.Header) domain.Hosting {
	var hosting domain.Hosting

	var records []domain.DNSRecord
	if rep.DNS.Data != nil {
		records = *rep.DNS.Data
	}
	dctx := providers.DetectionContext{
		Header:  headersRaw,
		MXHosts: lookup.RecordValues(records, domain.RecordMX),
		NSHosts: lookup.RecordValues(records, domain.RecordNS),
	}

	if len(headersRaw) > 0 {
		if id, err := s.deps.Detector.DetectHosting(ctx, dctx); err != nil {
			s.logger.Warn("hosting attribution failed", "domain", rep.Domain, "error", err)
		} else {
			hosting.HostingProviderID = id
		}
	}
	if len(dctx.MXHosts) > 0 {
		if id, err := s.deps.Detector.DetectEmail(ctx, dctx); err != nil {
			s.logger.Warn("email attribution failed", "domain", rep.Domain, "error", err)
		} else {
			hosting.EmailProviderID = id
		}
	}
	if len(dctx.NSHosts) > 0 {
		if id, err := s.deps.Detector.DetectDNS(ctx, dctx); err != nil {
			s.logger.Warn("dns attribution failed", "domain", rep.Domain, "error", err)
		} else {
			hosting.DNSProviderID = id
		}
	}
	return hosting
}

// readCache wraps a cache read with metrics and error tolerance: a broken
// cache row is a miss, not a report failure.
func readCache[T any](s *ReportService, kind string, get func() (domain.Cached[T], error)) domain.Cached[T] {
	cached, err := get()
	if err != nil {
		s.logger.Warn("cache read failed", "kind", kind, "error", err)
		s.metrics.ObserveCacheRead(kind, "miss")
		return domain.Cached[T]{}
	}
	switch {
	case cached.Fresh():
		s.metrics.ObserveCacheRead(kind, "fresh")
	case cached.Data != nil:
		s.metrics.ObserveCacheRead(kind, "stale")
	default:
		s.metrics.ObserveCacheRead(kind, "miss")
	}
	return cached
}

func (s *ReportService) refresh(ctx context.Context, kind, name string, fn func(ctx context.Context) error) error {
	start := time.Now()
	err := s.runner.Run(ctx, kind, fn)
	s.metrics.ObserveLookup(kind, time.Since(start).Seconds(), err)
	if err != nil {
		s.logger.Warn("refresh failed, serving cached state",
			"kind", kind, "domain", name, "error", err)
	}
	return err
}

// classify translates a lookup failure into the retry taxonomy.
func classify(err error) error {
	if lookup.IsTemporary(err) {
		return &RetryableError{Err: err}
	}
	return &FatalError{Err: err}
}

func freshNow[T any](data *T) domain.Cached[T] {
	now := time.Now()
	return domain.Cached[T]{Data: data, FetchedAt: &now}
}

func faviconExt(contentType string) string {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mediaType {
		case "image/png":
			return ".png"
		case "image/svg+xml":
			return ".svg"
		case "image/jpeg":
			return ".jpg"
		case "image/gif":
			return ".gif"
		}
	}
	if strings.Contains(contentType, "icon") {
		return ".ico"
	}
	return ".ico"
}
