package providers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

// ResolveParams identify a provider to resolve or lazily create.
type ResolveParams struct {
	Category domain.ProviderCategory
	Name     string
	Domain   string
}

// Resolver maps provider identity to a stable row ID, creating a discovered
// provider when nothing matches.
type Resolver interface {
	ResolveOrCreate(ctx context.Context, params ResolveParams) (int64, error)
}

// Detector attributes a detection context to providers per category:
// first-match-wins over the curated catalog, falling back to a discovered
// provider derived from the raw signal itself.
type Detector struct {
	catalog  Catalog
	resolver Resolver
	logger   *slog.Logger
}

func NewDetector(catalog Catalog, resolver Resolver, logger *slog.Logger) *Detector {
	return &Detector{
		catalog:  catalog,
		resolver: resolver,
		logger:   logger.With("component", "detector"),
	}
}

// DetectHosting attributes the HTTP response headers to a hosting provider.
// There is no usable fallback signal, so no catalog match means unknown.
func (d *Detector) DetectHosting(ctx context.Context, dctx DetectionContext) (*int64, error) {
	return d.detect(ctx, domain.CategoryHosting, dctx, nil)
}

// DetectEmail attributes MX hosts to an email provider, discovering one from
// the first MX host's registrable domain when the catalog has no match.
func (d *Detector) DetectEmail(ctx context.Context, dctx DetectionContext) (*int64, error) {
	return d.detect(ctx, domain.CategoryEmail, dctx, discoveredFromHosts(dctx.MXHosts))
}

// DetectDNS attributes NS hosts to a DNS provider, discovering one from the
// first NS host's registrable domain when the catalog has no match.
func (d *Detector) DetectDNS(ctx context.Context, dctx DetectionContext) (*int64, error) {
	return d.detect(ctx, domain.CategoryDNS, dctx, discoveredFromHosts(dctx.NSHosts))
}

// DetectCA attributes a certificate issuer string to a certificate authority,
// discovering one named after the issuer organization when unmatched.
func (d *Detector) DetectCA(ctx context.Context, issuer string) (*int64, error) {
	dctx := DetectionContext{CertIssuer: issuer}
	fallback := func() *ResolveParams {
		if issuer == "" {
			return nil
		}
		return &ResolveParams{Category: domain.CategoryCA, Name: issuer}
	}
	return d.detect(ctx, domain.CategoryCA, dctx, fallback)
}

// DetectRegistrar attributes a registrar string, discovering a provider named
// after it when unmatched.
func (d *Detector) DetectRegistrar(ctx context.Context, registrar string) (*int64, error) {
	dctx := DetectionContext{Registrar: registrar}
	fallback := func() *ResolveParams {
		if registrar == "" {
			return nil
		}
		return &ResolveParams{Category: domain.CategoryRegistrar, Name: registrar}
	}
	return d.detect(ctx, domain.CategoryRegistrar, dctx, fallback)
}

func (d *Detector) detect(ctx context.Context, category domain.ProviderCategory, dctx DetectionContext, fallback func() *ResolveParams) (*int64, error) {
	entries, err := d.catalog.Entries(ctx, category)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.Rule.Rule == nil || !entry.Rule.Rule.Match(dctx) {
			continue
		}
		id, err := d.resolver.ResolveOrCreate(ctx, ResolveParams{
			Category: category,
			Name:     entry.Name,
			Domain:   entry.Domain,
		})
		if err != nil {
			return nil, err
		}
		return &id, nil
	}

	if fallback == nil {
		return nil, nil
	}
	params := fallback()
	if params == nil {
		return nil, nil
	}
	if params.Category == "" {
		params.Category = category
	}
	id, err := d.resolver.ResolveOrCreate(ctx, *params)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// discoveredFromHosts derives a discovered-provider identity from the first
// usable hostname's registrable domain (e.g. mx1.mail.example-isp.net ⇒
// example-isp.net).
func discoveredFromHosts(hosts []string) func() *ResolveParams {
	return func() *ResolveParams {
		for _, h := range hosts {
			name, _, _, err := domain.Canonicalize(h)
			if err != nil || name == "" {
				continue
			}
			return &ResolveParams{Name: name, Domain: name}
		}
		return nil
	}
}

// SyntheticContext rebuilds a detection context from a discovered provider's
// own name and domain so a newly added catalog rule can be tested against it
// retroactively. Header-based rules cannot be reconstructed and simply never
// match.
func SyntheticContext(category domain.ProviderCategory, name, providerDomain string) DetectionContext {
	dctx := DetectionContext{}
	switch category {
	case domain.CategoryEmail:
		if providerDomain != "" {
			dctx.MXHosts = []string{providerDomain}
		}
	case domain.CategoryDNS:
		if providerDomain != "" {
			dctx.NSHosts = []string{providerDomain}
		}
	case domain.CategoryCA:
		dctx.CertIssuer = strings.TrimSpace(name + " " + providerDomain)
	case domain.CategoryRegistrar:
		dctx.Registrar = strings.TrimSpace(name + " " + providerDomain)
	}
	return dctx
}
