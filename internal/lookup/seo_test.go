package lookup

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakejarvis/domainstack.io-sub006/internal/netguard"
)

const landingPage = `<!doctype html>
<html>
<head>
  <title>Example Domain</title>
  <title>second title ignored</title>
  <meta name="description" content="An illustrative example.">
  <meta name="description" content="duplicate ignored">
  <meta property="og:title" content="Example">
  <meta property="og:image" content="/assets/card.png">
  <meta name="twitter:card" content="summary_large_image">
  <meta name="twitter:image" content="https://cdn.example.com/tw.png">
  <link rel="canonical" href="/canonical">
</head>
<body>
  <title>body title ignored</title>
  <p>hello</p>
</body>
</html>`

func TestSEOLookup(t *testing.T) {
	fetch := &stubFetcher{responses: map[string]*netguard.Result{
		"https://example.com/": {
			Status:      http.StatusOK,
			OK:          true,
			ContentType: "text/html; charset=utf-8",
			Body:        []byte(landingPage),
			FinalURL:    "https://www.example.com/home",
		},
		"https://example.com/robots.txt": {
			Status:      http.StatusOK,
			OK:          true,
			ContentType: "text/plain",
			Body:        []byte("User-agent: *\nDisallow: /admin\n"),
		},
	}}
	client := NewSEOClient(fetch, time.Second, quietLogger())

	result, err := client.Lookup(context.Background(), "example.com")
	require.NoError(t, err)

	assert.Equal(t, "Example Domain", result.SEO.Title)
	assert.Equal(t, "An illustrative example.", result.SEO.Description)
	// Relative URLs resolve against the final (post-redirect) URL.
	assert.Equal(t, "https://www.example.com/canonical", result.SEO.CanonicalURL)
	assert.Equal(t, "Example", result.SEO.OpenGraph["og:title"])
	assert.Equal(t, "summary_large_image", result.SEO.Twitter["twitter:card"])
	assert.Equal(t, "https://www.example.com/assets/card.png", result.PreviewImage)

	require.NotNil(t, result.SEO.Robots)
	assert.True(t, result.SEO.Robots.Fetched)
	require.Len(t, result.SEO.Robots.Groups, 1)
}

func TestSEOLookupTwitterImageFallback(t *testing.T) {
	page := `<html><head><meta name="twitter:image" content="https://cdn.example.com/tw.png"></head></html>`
	fetch := &stubFetcher{responses: map[string]*netguard.Result{
		"https://example.com/": {
			Status:      http.StatusOK,
			OK:          true,
			ContentType: "text/html",
			Body:        []byte(page),
		},
	}}
	client := NewSEOClient(fetch, time.Second, quietLogger())

	result, err := client.Lookup(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/tw.png", result.PreviewImage)
}

func TestSEOLookupNonHTMLPage(t *testing.T) {
	fetch := &stubFetcher{responses: map[string]*netguard.Result{
		"https://example.com/": {
			Status:      http.StatusOK,
			OK:          true,
			ContentType: "application/json",
			Body:        []byte(`{"not":"html"}`),
		},
	}}
	client := NewSEOClient(fetch, time.Second, quietLogger())

	result, err := client.Lookup(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Empty(t, result.SEO.Title)
	// robots.txt degrades to not-fetched when it 404s.
	require.NotNil(t, result.SEO.Robots)
	assert.False(t, result.SEO.Robots.Fetched)
}

func TestSEOLookupUnsafePreviewScheme(t *testing.T) {
	page := `<html><head><meta property="og:image" content="javascript:alert(1)"></head></html>`
	fetch := &stubFetcher{responses: map[string]*netguard.Result{
		"https://example.com/": {
			Status:      http.StatusOK,
			OK:          true,
			ContentType: "text/html",
			Body:        []byte(page),
			FinalURL:    "https://example.com/",
		},
	}}
	client := NewSEOClient(fetch, time.Second, quietLogger())

	result, err := client.Lookup(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Empty(t, result.PreviewImage)
}
