package lookup

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/jakejarvis/domainstack.io-sub006/internal/netguard"
)

const maxFaviconBytes = 512 << 10

// FaviconResult is a fetched icon ready for re-hosting.
type FaviconResult struct {
	Body        []byte
	ContentType string
}

// FaviconClient fetches a domain's favicon. A domain that demonstrably has
// no icon yields (nil, nil) so the caller can cache the confirmed absence.
type FaviconClient struct {
	fetch   Fetcher
	timeout time.Duration
}

func NewFaviconClient(fetch Fetcher, timeout time.Duration) *FaviconClient {
	if timeout == 0 {
		timeout = 8 * time.Second
	}
	return &FaviconClient{fetch: fetch, timeout: timeout}
}

func (c *FaviconClient) Lookup(ctx context.Context, name string) (*FaviconResult, error) {
	res, err := c.fetch.Fetch(ctx, "https://"+name+"/favicon.ico", netguard.Options{
		Method:   http.MethodGet,
		Timeout:  c.timeout,
		MaxBytes: maxFaviconBytes,
	})
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, temporary("favicon", "timeout", err)
		}
		switch netguard.KindOf(err) {
		case netguard.ErrSizeExceeded:
			// Oversized icons are treated as absent rather than retried.
			return nil, nil
		case netguard.ErrDNS, netguard.ErrInvalidResponse:
			return nil, temporary("favicon", "retry", err)
		default:
			return nil, permanent("favicon", "unreachable", err)
		}
	}

	if res.Status == http.StatusNotFound || res.Status == http.StatusGone {
		return nil, nil
	}
	if !res.OK || len(res.Body) == 0 {
		return nil, nil
	}
	if strings.HasPrefix(res.ContentType, "text/html") {
		// Origins that serve their SPA shell for every path do not have a
		// real icon at this location.
		return nil, nil
	}

	contentType := res.ContentType
	if contentType == "" {
		contentType = "image/x-icon"
	}
	return &FaviconResult{Body: res.Body, ContentType: contentType}, nil
}
