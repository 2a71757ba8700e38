// Package netguard provides the SSRF-hardened fetch primitive every outbound
// HTTP call in the lookup pipeline goes through. Scheme, hostname and the
// DNS-resolved address are re-validated before every hop, redirects are
// followed manually so each target is vetted, and bodies are read
// incrementally against a hard byte limit.
package netguard

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"time"
)

// AddrResolver resolves hostnames to candidate addresses. Resolution always
// goes through DNS-over-HTTPS, never the OS stub resolver, which would
// exhaust its thread pool under concurrency.
type AddrResolver interface {
	LookupAddrs(ctx context.Context, hostname string) ([]netip.Addr, error)
}

// Options control a single fetch.
type Options struct {
	Method       string
	Header       http.Header
	Timeout      time.Duration
	MaxBytes     int64
	MaxRedirects int
	AllowedHosts []string
	AllowHTTP    bool

	// TruncateOnLimit returns exactly MaxBytes bytes instead of failing with
	// size_exceeded when the body is larger.
	TruncateOnLimit bool

	// ReturnOnDisallowedRedirect returns the 3xx response unfollowed instead
	// of failing with host_not_allowed when a redirect targets a host that
	// does not pass validation.
	ReturnOnDisallowedRedirect bool

	// HeadFallbackGet retries a HEAD request as GET on HTTP 405.
	HeadFallbackGet bool
}

// Result is a completed fetch.
type Result struct {
	Body        []byte
	ContentType string
	FinalURL    string
	Status      int
	OK          bool
	Header      http.Header
}

const (
	defaultTimeout      = 10 * time.Second
	defaultMaxBytes     = 5 << 20
	defaultMaxRedirects = 5
)

var blockedHostSuffixes = []string{".local", ".internal", ".localhost"}

// Client is the hardened fetcher.
type Client struct {
	resolver AddrResolver
	logger   *slog.Logger

	// transport, when set, replaces the pinned-dial transport. Tests use it
	// to script responses without opening sockets.
	transport http.RoundTripper
}

func NewClient(resolver AddrResolver, logger *slog.Logger) *Client {
	return &Client{
		resolver: resolver,
		logger:   logger.With("component", "safefetch"),
	}
}

// Fetch performs the request, re-validating every hop. All failures are
// *FetchError with a kind from the closed taxonomy.
func (c *Client) Fetch(ctx context.Context, rawURL string, opts Options) (*Result, error) {
	if opts.Method == "" {
		opts.Method = http.MethodGet
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxBytes == 0 {
		opts.MaxBytes = defaultMaxBytes
	}
	if opts.MaxRedirects == 0 {
		opts.MaxRedirects = defaultMaxRedirects
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, fetchErr(ErrInvalidURL, rawURL, err)
	}

	method := opts.Method
	for hop := 0; ; hop++ {
		addr, vetErr := c.vet(ctx, u, opts)
		if vetErr != nil {
			return nil, vetErr
		}

		resp, err := c.do(ctx, u, method, addr, opts)
		if err != nil {
			return nil, fetchErr(ErrInvalidResponse, u.String(), err)
		}

		if loc := resp.Header.Get("Location"); isRedirect(resp.StatusCode) && loc != "" {
			next, nextErr := c.vetRedirect(ctx, u, loc, opts)
			if nextErr != nil {
				if opts.ReturnOnDisallowedRedirect && nextErr.Kind != ErrRedirectLimit && nextErr.Kind != ErrInvalidURL {
					return finishResponse(resp, u, opts)
				}
				resp.Body.Close()
				return nil, nextErr
			}
			resp.Body.Close()
			if hop >= opts.MaxRedirects {
				return nil, fetchErr(ErrRedirectLimit, u.String(), fmt.Errorf("more than %d redirects", opts.MaxRedirects))
			}
			// 303 always demotes to GET; other redirect codes keep the method.
			if resp.StatusCode == http.StatusSeeOther {
				method = http.MethodGet
			}
			u = next
			continue
		}

		if method == http.MethodHead && resp.StatusCode == http.StatusMethodNotAllowed && opts.HeadFallbackGet {
			resp.Body.Close()
			method = http.MethodGet
			opts.HeadFallbackGet = false
			continue
		}

		return finishResponse(resp, u, opts)
	}
}

func (c *Client) do(ctx context.Context, u *url.URL, method string, addr netip.Addr, opts Options) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range opts.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	rt := c.transport
	if rt == nil {
		dialer := &net.Dialer{Timeout: 5 * time.Second}
		transport := &http.Transport{
			// Pin the connection to the vetted address so the request cannot be
			// re-resolved to a different host between validation and dial.
			DialContext: func(ctx context.Context, network, address string) (net.Conn, error) {
				_, port, err := net.SplitHostPort(address)
				if err != nil {
					return nil, err
				}
				return dialer.DialContext(ctx, network, net.JoinHostPort(addr.String(), port))
			},
			TLSClientConfig:   &tls.Config{ServerName: u.Hostname()},
			DisableKeepAlives: true,
		}
		defer transport.CloseIdleConnections()
		rt = transport
	}

	client := &http.Client{
		Transport: rt,
		// Redirects are followed manually so each hop is re-vetted.
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return client.Do(req)
}

// vet validates a hop target and returns the address to dial.
func (c *Client) vet(ctx context.Context, u *url.URL, opts Options) (netip.Addr, *FetchError) {
	var zero netip.Addr

	switch u.Scheme {
	case "https":
	case "http":
		if !opts.AllowHTTP {
			return zero, fetchErr(ErrProtocolNotAllowed, u.String(), nil)
		}
	default:
		return zero, fetchErr(ErrProtocolNotAllowed, u.String(), nil)
	}

	host := strings.ToLower(strings.TrimSuffix(u.Hostname(), "."))
	if host == "" {
		return zero, fetchErr(ErrInvalidURL, u.String(), nil)
	}
	if host == "localhost" {
		return zero, fetchErr(ErrHostBlocked, u.String(), nil)
	}
	for _, suffix := range blockedHostSuffixes {
		if strings.HasSuffix(host, suffix) {
			return zero, fetchErr(ErrHostBlocked, u.String(), nil)
		}
	}

	if len(opts.AllowedHosts) > 0 && !hostAllowed(host, opts.AllowedHosts) {
		return zero, fetchErr(ErrHostNotAllowed, u.String(), nil)
	}

	if addr, err := netip.ParseAddr(host); err == nil {
		if !IsPublicUnicast(addr) {
			return zero, fetchErr(ErrPrivateIP, u.String(), nil)
		}
		return addr, nil
	}

	addrs, err := c.resolver.LookupAddrs(ctx, host)
	if err != nil {
		return zero, fetchErr(ErrDNS, u.String(), err)
	}
	if len(addrs) == 0 {
		return zero, fetchErr(ErrDNS, u.String(), fmt.Errorf("no addresses for %s", host))
	}
	for _, addr := range addrs {
		if !IsPublicUnicast(addr) {
			return zero, fetchErr(ErrPrivateIP, u.String(), fmt.Errorf("%s resolves to %s", host, addr))
		}
	}
	return addrs[0], nil
}

func (c *Client) vetRedirect(ctx context.Context, base *url.URL, location string, opts Options) (*url.URL, *FetchError) {
	next, err := base.Parse(location)
	if err != nil {
		return nil, fetchErr(ErrInvalidURL, location, err)
	}
	if _, vetErr := c.vet(ctx, next, opts); vetErr != nil {
		return nil, vetErr
	}
	return next, nil
}

func hostAllowed(host string, allowed []string) bool {
	for _, a := range allowed {
		a = strings.ToLower(a)
		if host == a || strings.HasSuffix(host, "."+a) {
			return true
		}
	}
	return false
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

func finishResponse(resp *http.Response, u *url.URL, opts Options) (*Result, error) {
	defer resp.Body.Close()

	body, err := readCapped(resp.Body, opts.MaxBytes, opts.TruncateOnLimit)
	if err != nil {
		return nil, fetchErr(ErrSizeExceeded, u.String(), err)
	}

	return &Result{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
		FinalURL:    u.String(),
		Status:      resp.StatusCode,
		OK:          resp.StatusCode >= 200 && resp.StatusCode < 300,
		Header:      resp.Header,
	}, nil
}

// readCapped reads at most maxBytes+1 bytes and either truncates or fails the
// instant the accumulated body exceeds the limit. The body is never buffered
// unbounded.
func readCapped(r io.Reader, maxBytes int64, truncate bool) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		if truncate {
			return data[:maxBytes], nil
		}
		return nil, fmt.Errorf("body exceeds %d bytes", maxBytes)
	}
	return data, nil
}
