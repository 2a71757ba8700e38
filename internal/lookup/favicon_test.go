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

func TestFaviconLookup(t *testing.T) {
	fetch := &stubFetcher{responses: map[string]*netguard.Result{
		"https://example.com/favicon.ico": {
			Status:      http.StatusOK,
			OK:          true,
			ContentType: "image/png",
			Body:        []byte{0x89, 'P', 'N', 'G'},
		},
	}}
	client := NewFaviconClient(fetch, time.Second)

	result, err := client.Lookup(context.Background(), "example.com")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "image/png", result.ContentType)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, result.Body)
}

func TestFaviconLookupDefaultContentType(t *testing.T) {
	fetch := &stubFetcher{responses: map[string]*netguard.Result{
		"https://example.com/favicon.ico": {
			Status: http.StatusOK,
			OK:     true,
			Body:   []byte{0x00, 0x00, 0x01, 0x00},
		},
	}}
	client := NewFaviconClient(fetch, time.Second)

	result, err := client.Lookup(context.Background(), "example.com")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "image/x-icon", result.ContentType)
}

func TestFaviconLookupConfirmedAbsent(t *testing.T) {
	cases := map[string]*netguard.Result{
		"not found":    {Status: http.StatusNotFound},
		"gone":         {Status: http.StatusGone},
		"empty body":   {Status: http.StatusOK, OK: true},
		"spa shell":    {Status: http.StatusOK, OK: true, ContentType: "text/html; charset=utf-8", Body: []byte("<html>")},
		"server error": {Status: http.StatusInternalServerError},
	}

	for name, res := range cases {
		t.Run(name, func(t *testing.T) {
			fetch := &stubFetcher{responses: map[string]*netguard.Result{
				"https://example.com/favicon.ico": res,
			}}
			client := NewFaviconClient(fetch, time.Second)

			result, err := client.Lookup(context.Background(), "example.com")
			require.NoError(t, err)
			assert.Nil(t, result)
		})
	}
}

func TestFaviconLookupOversizedTreatedAsAbsent(t *testing.T) {
	fetch := &stubFetcher{err: &netguard.FetchError{Kind: netguard.ErrSizeExceeded, URL: "https://example.com/favicon.ico"}}
	client := NewFaviconClient(fetch, time.Second)

	result, err := client.Lookup(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestFaviconLookupDNSFailureIsTemporary(t *testing.T) {
	fetch := &stubFetcher{err: &netguard.FetchError{Kind: netguard.ErrDNS, URL: "https://example.com/favicon.ico"}}
	client := NewFaviconClient(fetch, time.Second)

	_, err := client.Lookup(context.Background(), "example.com")
	require.Error(t, err)
	assert.True(t, IsTemporary(err))
}
