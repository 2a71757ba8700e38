package providers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

type stubCatalog struct {
	entries map[domain.ProviderCategory][]CatalogEntry
	err     error
}

func (s *stubCatalog) Entries(_ context.Context, category domain.ProviderCategory) ([]CatalogEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entries[category], nil
}

type stubResolver struct {
	nextID int64
	calls  []ResolveParams
}

func (s *stubResolver) ResolveOrCreate(_ context.Context, params ResolveParams) (int64, error) {
	s.calls = append(s.calls, params)
	s.nextID++
	return s.nextID, nil
}

func newTestDetector(catalog Catalog, resolver Resolver) *Detector {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewDetector(catalog, resolver, logger)
}

func TestDetectEmailCatalogMatch(t *testing.T) {
	resolver := &stubResolver{}
	detector := newTestDetector(&stubCatalog{
		entries: map[domain.ProviderCategory][]CatalogEntry{
			domain.CategoryEmail: {
				{Name: "Google Workspace", Domain: "google.com", Rule: RuleSpec{Rule: MXSuffix{Suffix: "googlemail.com"}}},
				{Name: "Zoho Mail", Domain: "zoho.com", Rule: RuleSpec{Rule: MXSuffix{Suffix: "zoho.com"}}},
			},
		},
	}, resolver)

	id, err := detector.DetectEmail(context.Background(), DetectionContext{
		MXHosts: []string{"aspmx.l.googlemail.com"},
	})
	require.NoError(t, err)
	require.NotNil(t, id)

	require.Len(t, resolver.calls, 1)
	assert.Equal(t, "Google Workspace", resolver.calls[0].Name)
	assert.Equal(t, domain.CategoryEmail, resolver.calls[0].Category)
}

func TestDetectEmailFirstMatchWins(t *testing.T) {
	resolver := &stubResolver{}
	detector := newTestDetector(&stubCatalog{
		entries: map[domain.ProviderCategory][]CatalogEntry{
			domain.CategoryEmail: {
				{Name: "First", Rule: RuleSpec{Rule: MXSuffix{Suffix: "example.net"}}},
				{Name: "Second", Rule: RuleSpec{Rule: MXSuffix{Suffix: "mail.example.net"}}},
			},
		},
	}, resolver)

	_, err := detector.DetectEmail(context.Background(), DetectionContext{
		MXHosts: []string{"mx1.mail.example.net"},
	})
	require.NoError(t, err)
	require.Len(t, resolver.calls, 1)
	assert.Equal(t, "First", resolver.calls[0].Name)
}

func TestDetectEmailDiscoversFromMXHost(t *testing.T) {
	resolver := &stubResolver{}
	detector := newTestDetector(&stubCatalog{}, resolver)

	id, err := detector.DetectEmail(context.Background(), DetectionContext{
		MXHosts: []string{"mx1.mail.example-isp.net"},
	})
	require.NoError(t, err)
	require.NotNil(t, id)

	require.Len(t, resolver.calls, 1)
	assert.Equal(t, "example-isp.net", resolver.calls[0].Name)
	assert.Equal(t, "example-isp.net", resolver.calls[0].Domain)
	assert.Equal(t, domain.CategoryEmail, resolver.calls[0].Category)
}

func TestDetectHostingNoFallback(t *testing.T) {
	resolver := &stubResolver{}
	detector := newTestDetector(&stubCatalog{}, resolver)

	header := http.Header{}
	header.Set("Server", "something-unknown")
	id, err := detector.DetectHosting(context.Background(), DetectionContext{Header: header})
	require.NoError(t, err)
	assert.Nil(t, id)
	assert.Empty(t, resolver.calls)
}

func TestDetectCA(t *testing.T) {
	resolver := &stubResolver{}
	detector := newTestDetector(&stubCatalog{
		entries: map[domain.ProviderCategory][]CatalogEntry{
			domain.CategoryCA: {
				{Name: "Let's Encrypt", Domain: "letsencrypt.org", Rule: RuleSpec{Rule: IssuerContains{Substr: "Let's Encrypt"}}},
			},
		},
	}, resolver)

	id, err := detector.DetectCA(context.Background(), "CN=R11,O=Let's Encrypt,C=US")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "Let's Encrypt", resolver.calls[0].Name)

	// Unmatched issuer becomes a discovered CA named after itself.
	id, err = detector.DetectCA(context.Background(), "O=Obscure Trust GmbH")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "O=Obscure Trust GmbH", resolver.calls[1].Name)

	// Empty issuer yields unknown, not a discovered provider.
	id, err = detector.DetectCA(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestDetectCatalogError(t *testing.T) {
	detector := newTestDetector(&stubCatalog{err: errors.New("store down")}, &stubResolver{})

	_, err := detector.DetectDNS(context.Background(), DetectionContext{NSHosts: []string{"ns1.example.com"}})
	assert.Error(t, err)
}

func TestSyntheticContext(t *testing.T) {
	dctx := SyntheticContext(domain.CategoryEmail, "Google Workspace", "google.com")
	assert.Equal(t, []string{"google.com"}, dctx.MXHosts)
	assert.True(t, MXSuffix{Suffix: "google.com"}.Match(dctx))

	dctx = SyntheticContext(domain.CategoryDNS, "Cloudflare", "cloudflare.com")
	assert.Equal(t, []string{"cloudflare.com"}, dctx.NSHosts)

	dctx = SyntheticContext(domain.CategoryCA, "Let's Encrypt", "letsencrypt.org")
	assert.True(t, IssuerContains{Substr: "let's encrypt"}.Match(dctx))

	// Header signals cannot be reconstructed.
	dctx = SyntheticContext(domain.CategoryHosting, "Vercel", "vercel.com")
	assert.False(t, HeaderPresent{Name: "x-vercel-id"}.Match(dctx))
}
