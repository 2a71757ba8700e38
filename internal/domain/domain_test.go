package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		in      string
		name    string
		tld     string
		unicode string
	}{
		{"example.com", "example.com", "com", "example.com"},
		{"EXAMPLE.COM", "example.com", "com", "example.com"},
		{"example.com.", "example.com", "com", "example.com"},
		{"  example.com  ", "example.com", "com", "example.com"},
		{"www.example.com", "example.com", "com", "example.com"},
		{"a.b.c.example.co.uk", "example.co.uk", "co.uk", "example.co.uk"},
		{"münchen.de", "xn--mnchen-3ya.de", "de", "münchen.de"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			name, tld, unicode, err := Canonicalize(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.name, name)
			assert.Equal(t, tc.tld, tld)
			assert.Equal(t, tc.unicode, unicode)
		})
	}
}

func TestCanonicalizeRejectsInvalidInput(t *testing.T) {
	for _, in := range []string{"", "   ", ".", "com", "no spaces.com"} {
		_, _, _, err := Canonicalize(in)
		assert.Error(t, err, "%q", in)
	}
}

func TestCachedFresh(t *testing.T) {
	now := time.Now()
	value := "cached"

	fresh := Cached[string]{Data: &value, FetchedAt: &now}
	assert.True(t, fresh.Fresh())

	stale := Cached[string]{Data: &value, Stale: true, FetchedAt: &now}
	assert.False(t, stale.Fresh())

	miss := Cached[string]{}
	assert.False(t, miss.Fresh())
}

func TestExpiryNotificationType(t *testing.T) {
	assert.Equal(t, NotificationType("domain_expiry_30d"), ExpiryNotificationType(30))
	assert.Equal(t, NotificationType("domain_expiry_1d"), ExpiryNotificationType(1))
}
