package lookup

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakejarvis/domainstack.io-sub006/internal/netguard"
)

func TestHeadersLookup(t *testing.T) {
	header := http.Header{}
	header.Set("Server", "cloudflare")
	header.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains ")
	header.Set("X-Request-Id", "abc-123") // not tracked, must be dropped
	header.Set("Cf-Ray", "8c1d2e3f")      // not tracked either

	fetch := &stubFetcher{responses: map[string]*netguard.Result{
		"https://example.com/": {
			Status:   http.StatusOK,
			OK:       true,
			Header:   header,
			FinalURL: "https://example.com/",
		},
	}}
	client := NewHeadersClient(fetch, time.Second)

	result, err := client.Lookup(context.Background(), "example.com")
	require.NoError(t, err)

	assert.Equal(t, "cloudflare", result.Headers["server"])
	assert.Equal(t, "max-age=31536000; includeSubDomains", result.Headers["strict-transport-security"])
	_, tracked := result.Headers["x-request-id"]
	assert.False(t, tracked)

	// The raw block still carries everything for provider attribution.
	assert.Equal(t, "8c1d2e3f", result.Raw.Get("Cf-Ray"))
	assert.Equal(t, http.StatusOK, result.Status)

	// HEAD with GET fallback, constrained to the probed domain.
	require.Len(t, fetch.opts, 1)
	opts := fetch.opts[0]
	assert.Equal(t, http.MethodHead, opts.Method)
	assert.True(t, opts.HeadFallbackGet)
	assert.True(t, opts.ReturnOnDisallowedRedirect)
	assert.Equal(t, []string{"example.com"}, opts.AllowedHosts)
}

func TestHeadersLookupDNSFailureIsTemporary(t *testing.T) {
	fetch := &stubFetcher{err: &netguard.FetchError{Kind: netguard.ErrDNS, URL: "https://example.com/"}}
	client := NewHeadersClient(fetch, time.Second)

	_, err := client.Lookup(context.Background(), "example.com")
	require.Error(t, err)
	assert.True(t, IsTemporary(err))
}

func TestHeadersLookupBlockedHostIsPermanent(t *testing.T) {
	fetch := &stubFetcher{err: &netguard.FetchError{Kind: netguard.ErrHostBlocked, URL: "https://db.internal/"}}
	client := NewHeadersClient(fetch, time.Second)

	_, err := client.Lookup(context.Background(), "db.internal")
	require.Error(t, err)
	assert.False(t, IsTemporary(err))
}

func TestHeadersLookupPlainErrorIsPermanent(t *testing.T) {
	fetch := &stubFetcher{err: errors.New("tls handshake failed")}
	client := NewHeadersClient(fetch, time.Second)

	_, err := client.Lookup(context.Background(), "example.com")
	require.Error(t, err)
	assert.False(t, IsTemporary(err))
}
