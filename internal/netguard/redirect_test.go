package netguard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedTransport serves canned responses keyed by "METHOD url" and records
// every request it sees.
type scriptedTransport struct {
	responses map[string]scriptedResponse
	requests  []string
}

type scriptedResponse struct {
	status int
	header http.Header
	body   string
}

func (t *scriptedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	key := req.Method + " " + req.URL.String()
	t.requests = append(t.requests, key)
	sr, ok := t.responses[key]
	if !ok {
		return nil, fmt.Errorf("unexpected request %s", key)
	}
	header := sr.header
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{
		StatusCode: sr.status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(sr.body)),
		Request:    req,
	}, nil
}

func redirectTo(location string) scriptedResponse {
	return scriptedResponse{status: http.StatusFound, header: http.Header{"Location": {location}}}
}

func publicHosts(hosts ...string) *stubResolver {
	addrs := make(map[string][]netip.Addr, len(hosts))
	for _, h := range hosts {
		addrs[h] = []netip.Addr{netip.MustParseAddr("93.184.216.34")}
	}
	return &stubResolver{addrs: addrs}
}

func scriptedClient(r AddrResolver, rt http.RoundTripper) *Client {
	c := testClient(r)
	c.transport = rt
	return c
}

func TestFetchFollowsRedirectChain(t *testing.T) {
	rt := &scriptedTransport{responses: map[string]scriptedResponse{
		"GET https://a.example/":     redirectTo("https://b.example/moved"),
		"GET https://b.example/moved": {status: 200, body: "landed"},
	}}
	c := scriptedClient(publicHosts("a.example", "b.example"), rt)

	res, err := c.Fetch(context.Background(), "https://a.example/", Options{})
	require.NoError(t, err)
	assert.Equal(t, 200, res.Status)
	assert.Equal(t, "https://b.example/moved", res.FinalURL)
	assert.Equal(t, "landed", string(res.Body))
	assert.Equal(t, []string{"GET https://a.example/", "GET https://b.example/moved"}, rt.requests)
}

func TestFetchRedirectTargetIsVetted(t *testing.T) {
	// The second host resolves to a private address, so the hop must fail
	// even though the first one vetted clean.
	resolver := publicHosts("a.example")
	resolver.addrs["rebind.example"] = []netip.Addr{netip.MustParseAddr("10.0.0.1")}
	rt := &scriptedTransport{responses: map[string]scriptedResponse{
		"GET https://a.example/": redirectTo("https://rebind.example/"),
	}}
	c := scriptedClient(resolver, rt)

	_, err := c.Fetch(context.Background(), "https://a.example/", Options{})
	assert.Equal(t, ErrPrivateIP, KindOf(err))
}

func TestFetchRedirectToBlockedHost(t *testing.T) {
	rt := &scriptedTransport{responses: map[string]scriptedResponse{
		"GET https://a.example/": redirectTo("https://db.internal/"),
	}}
	c := scriptedClient(publicHosts("a.example"), rt)

	_, err := c.Fetch(context.Background(), "https://a.example/", Options{})
	assert.Equal(t, ErrHostBlocked, KindOf(err))
}

func TestFetchDisallowedRedirectFailsByDefault(t *testing.T) {
	rt := &scriptedTransport{responses: map[string]scriptedResponse{
		"GET https://a.example/": redirectTo("https://evil.test/"),
	}}
	c := scriptedClient(publicHosts("a.example", "evil.test"), rt)

	_, err := c.Fetch(context.Background(), "https://a.example/", Options{
		AllowedHosts: []string{"a.example"},
	})
	assert.Equal(t, ErrHostNotAllowed, KindOf(err))
}

func TestFetchDisallowedRedirectReturnedUnfollowed(t *testing.T) {
	rt := &scriptedTransport{responses: map[string]scriptedResponse{
		"GET https://a.example/": redirectTo("https://evil.test/"),
	}}
	c := scriptedClient(publicHosts("a.example", "evil.test"), rt)

	res, err := c.Fetch(context.Background(), "https://a.example/", Options{
		AllowedHosts:               []string{"a.example"},
		ReturnOnDisallowedRedirect: true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, res.Status)
	assert.False(t, res.OK)
	assert.Equal(t, "https://a.example/", res.FinalURL)
	assert.Equal(t, "https://evil.test/", res.Header.Get("Location"))
	// Only the first hop was requested.
	assert.Len(t, rt.requests, 1)
}

func TestFetchSeeOtherDemotesToGet(t *testing.T) {
	rt := &scriptedTransport{responses: map[string]scriptedResponse{
		"HEAD https://a.example/submit": {status: http.StatusSeeOther, header: http.Header{"Location": {"https://a.example/result"}}},
		"GET https://a.example/result":  {status: 200, body: "done"},
	}}
	c := scriptedClient(publicHosts("a.example"), rt)

	res, err := c.Fetch(context.Background(), "https://a.example/submit", Options{Method: http.MethodHead})
	require.NoError(t, err)
	assert.Equal(t, "done", string(res.Body))
	assert.Equal(t, []string{"HEAD https://a.example/submit", "GET https://a.example/result"}, rt.requests)
}

func TestFetchTemporaryRedirectKeepsMethod(t *testing.T) {
	rt := &scriptedTransport{responses: map[string]scriptedResponse{
		"HEAD https://a.example/":     {status: http.StatusTemporaryRedirect, header: http.Header{"Location": {"https://a.example/here"}}},
		"HEAD https://a.example/here": {status: 200},
	}}
	c := scriptedClient(publicHosts("a.example"), rt)

	_, err := c.Fetch(context.Background(), "https://a.example/", Options{Method: http.MethodHead})
	require.NoError(t, err)
	assert.Equal(t, []string{"HEAD https://a.example/", "HEAD https://a.example/here"}, rt.requests)
}

func TestFetchRedirectLimit(t *testing.T) {
	rt := &scriptedTransport{responses: map[string]scriptedResponse{
		"GET https://a.example/": redirectTo("https://a.example/"),
	}}
	c := scriptedClient(publicHosts("a.example"), rt)

	_, err := c.Fetch(context.Background(), "https://a.example/", Options{MaxRedirects: 2})
	assert.Equal(t, ErrRedirectLimit, KindOf(err))
}

func TestFetchRedirectLimitNotReturnedUnfollowed(t *testing.T) {
	// ReturnOnDisallowedRedirect is about disallowed targets, not loops.
	rt := &scriptedTransport{responses: map[string]scriptedResponse{
		"GET https://a.example/": redirectTo("https://a.example/"),
	}}
	c := scriptedClient(publicHosts("a.example"), rt)

	_, err := c.Fetch(context.Background(), "https://a.example/", Options{
		MaxRedirects:               2,
		ReturnOnDisallowedRedirect: true,
	})
	assert.Equal(t, ErrRedirectLimit, KindOf(err))
}

func TestFetchHeadFallsBackToGet(t *testing.T) {
	rt := &scriptedTransport{responses: map[string]scriptedResponse{
		"HEAD https://a.example/": {status: http.StatusMethodNotAllowed},
		"GET https://a.example/":  {status: 200, body: "get body"},
	}}
	c := scriptedClient(publicHosts("a.example"), rt)

	res, err := c.Fetch(context.Background(), "https://a.example/", Options{
		Method:          http.MethodHead,
		HeadFallbackGet: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 200, res.Status)
	assert.Equal(t, "get body", string(res.Body))
	assert.Equal(t, []string{"HEAD https://a.example/", "GET https://a.example/"}, rt.requests)
}
