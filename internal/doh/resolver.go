// Package doh resolves names over DNS-over-HTTPS, bypassing the OS stub
// resolver. Providers are tried in a deterministic per-hostname rotation so
// the same domain always prefers the same upstream across requests while load
// still spreads across the pool in aggregate.
package doh

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"log/slog"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Record type codes used in the dns-json wire format.
const (
	TypeA    = 1
	TypeNS   = 2
	TypeMX   = 15
	TypeTXT  = 16
	TypeAAAA = 28
)

// Provider is one DNS-over-HTTPS endpoint speaking the dns-json contract.
type Provider struct {
	Name string
	URL  string
}

// Answer is a single record from a dns-json response.
type Answer struct {
	Name string `json:"name"`
	Type int    `json:"type"`
	TTL  uint32 `json:"TTL"`
	Data string `json:"data"`
}

type response struct {
	Status int      `json:"Status"`
	Answer []Answer `json:"Answer"`
}

// Resolver queries a pool of DoH providers with per-hostname deterministic
// ordering and fallback.
type Resolver struct {
	providers []Provider
	client    *http.Client
	logger    *slog.Logger
}

// New creates a Resolver. timeout bounds each individual provider query.
func New(providers []Provider, timeout time.Duration, logger *slog.Logger) *Resolver {
	if timeout == 0 {
		timeout = 2 * time.Second
	}
	return &Resolver{
		providers: providers,
		client:    &http.Client{Timeout: timeout},
		logger:    logger.With("component", "doh"),
	}
}

// ProviderOrder returns the provider rotation for a hostname. The start index
// is an FNV-1a hash of the lowercased name modulo the pool size, so ordering
// is case-insensitive and stable across calls.
func (r *Resolver) ProviderOrder(hostname string) []Provider {
	if len(r.providers) == 0 {
		return nil
	}
	h := fnv.New32a()
	io.WriteString(h, strings.ToLower(hostname))
	start := int(h.Sum32()) % len(r.providers)
	if start < 0 {
		start += len(r.providers)
	}

	ordered := make([]Provider, 0, len(r.providers))
	for i := range r.providers {
		ordered = append(ordered, r.providers[(start+i)%len(r.providers)])
	}
	return ordered
}

// Query asks for one record type, trying providers in rotation order. A
// provider failure falls through to the next; if every provider fails the
// last error is returned. NXDOMAIN and empty answers yield an empty slice.
func (r *Resolver) Query(ctx context.Context, name string, qtype int) ([]Answer, error) {
	providers := r.ProviderOrder(name)
	if len(providers) == 0 {
		return nil, fmt.Errorf("doh: no providers configured")
	}

	var lastErr error
	for _, p := range providers {
		answers, err := r.queryProvider(ctx, p, name, qtype)
		if err != nil {
			lastErr = err
			r.logger.Debug("provider query failed",
				"provider", p.Name,
				"name", name,
				"type", qtype,
				"error", err,
			)
			continue
		}
		return answers, nil
	}
	return nil, lastErr
}

func (r *Resolver) queryProvider(ctx context.Context, p Provider, name string, qtype int) ([]Answer, error) {
	u := fmt.Sprintf("%s?name=%s&type=%d", p.URL, url.QueryEscape(name), qtype)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/dns-json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", p.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("query %s: unexpected status %d", p.Name, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", p.Name, err)
	}

	var parsed response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse %s response: %w", p.Name, err)
	}

	// Status != 0 (e.g. NXDOMAIN) and missing Answer both mean "no records",
	// not an error.
	if parsed.Status != 0 || len(parsed.Answer) == 0 {
		return nil, nil
	}

	// Drop CNAME chain entries and anything else that is not the asked-for
	// type; providers include them in the answer section.
	answers := make([]Answer, 0, len(parsed.Answer))
	for _, a := range parsed.Answer {
		if a.Type == qtype {
			answers = append(answers, a)
		}
	}
	return answers, nil
}

// LookupAddrs resolves a hostname to its A and AAAA addresses, queried in
// parallel. Both record types empty means the name does not resolve; that is
// an empty result, not an error.
func (r *Resolver) LookupAddrs(ctx context.Context, hostname string) ([]netip.Addr, error) {
	var v4, v6 []Answer

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		v4, err = r.Query(gctx, hostname, TypeA)
		return err
	})
	g.Go(func() error {
		var err error
		v6, err = r.Query(gctx, hostname, TypeAAAA)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	addrs := make([]netip.Addr, 0, len(v4)+len(v6))
	for _, a := range append(v4, v6...) {
		addr, err := netip.ParseAddr(strings.TrimSpace(a.Data))
		if err != nil {
			continue
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}
