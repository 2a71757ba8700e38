package lookup

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
	"github.com/jakejarvis/domainstack.io-sub006/internal/netguard"
)

// trackedHeaders is the closed set of response headers worth persisting.
// Everything else is noise that churns between requests.
var trackedHeaders = []string{
	"server",
	"x-powered-by",
	"strict-transport-security",
	"content-security-policy",
	"x-frame-options",
	"x-content-type-options",
	"referrer-policy",
	"permissions-policy",
	"access-control-allow-origin",
	"cross-origin-opener-policy",
	"cross-origin-resource-policy",
	"alt-svc",
	"via",
}

// HeadersResult carries both the persisted subset and the raw header block
// that provider attribution matches against.
type HeadersResult struct {
	Headers  domain.Headers
	Raw      http.Header
	Status   int
	FinalURL string
}

// HeadersClient probes a domain's web endpoint with a HEAD request, falling
// back to GET when the origin rejects HEAD.
type HeadersClient struct {
	fetch   Fetcher
	timeout time.Duration
}

func NewHeadersClient(fetch Fetcher, timeout time.Duration) *HeadersClient {
	if timeout == 0 {
		timeout = 8 * time.Second
	}
	return &HeadersClient{fetch: fetch, timeout: timeout}
}

func (c *HeadersClient) Lookup(ctx context.Context, name string) (*HeadersResult, error) {
	res, err := c.fetch.Fetch(ctx, "https://"+name+"/", netguard.Options{
		Method:          http.MethodHead,
		Timeout:         c.timeout,
		MaxBytes:        1 << 16,
		TruncateOnLimit: true,
		HeadFallbackGet: true,
		// A redirect off the domain still tells us who serves it. Keep the
		// last on-domain response instead of failing.
		ReturnOnDisallowedRedirect: true,
		AllowedHosts:               []string{name},
	})
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, temporary("headers", "timeout", err)
		}
		switch netguard.KindOf(err) {
		case netguard.ErrDNS, netguard.ErrInvalidResponse:
			return nil, temporary("headers", "retry", err)
		default:
			return nil, permanent("headers", "unreachable", err)
		}
	}

	headers := make(domain.Headers, len(trackedHeaders))
	for _, key := range trackedHeaders {
		if v := res.Header.Get(key); v != "" {
			headers[key] = strings.TrimSpace(v)
		}
	}

	return &HeadersResult{
		Headers:  headers,
		Raw:      res.Header,
		Status:   res.Status,
		FinalURL: res.FinalURL,
	}, nil
}
