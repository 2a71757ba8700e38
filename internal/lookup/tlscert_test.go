package lookup

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"errors"
	"math/big"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAddrResolver struct {
	addrs []netip.Addr
	err   error
}

func (s *stubAddrResolver) LookupAddrs(context.Context, string) ([]netip.Addr, error) {
	return s.addrs, s.err
}

func selfSignedCert(t *testing.T) *x509.Certificate {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "example.com", Organization: []string{"Example"}},
		DNSNames:     []string{"example.com", "www.example.com"},
		NotBefore:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:     time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)
	return cert
}

func TestNormalizeCert(t *testing.T) {
	cert := selfSignedCert(t)

	entry := normalizeCert(cert)
	assert.Contains(t, entry.Subject, "CN=example.com")
	assert.Equal(t, entry.Subject, entry.Issuer)
	assert.True(t, entry.SelfSigned)
	assert.Equal(t, []string{"example.com", "www.example.com"}, entry.AltNames)
	assert.Equal(t, 2026, entry.ValidFrom.Year())
	assert.Equal(t, 2027, entry.ValidTo.Year())
}

func TestCertificateLookupDNSError(t *testing.T) {
	client := NewCertificateClient(&stubAddrResolver{err: errors.New("upstream down")}, time.Second)

	res, err := client.Lookup(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, CertDNSError, res.Status)
	assert.Contains(t, res.Detail, "upstream down")
	assert.Empty(t, res.Chain)
}

func TestCertificateLookupNoPublicAddress(t *testing.T) {
	client := NewCertificateClient(&stubAddrResolver{
		addrs: []netip.Addr{netip.MustParseAddr("10.0.0.1")},
	}, time.Second)

	res, err := client.Lookup(context.Background(), "internal.example")
	require.NoError(t, err)
	assert.Equal(t, CertDNSError, res.Status)
	assert.Equal(t, "no public address", res.Detail)
}

func TestDetailOf(t *testing.T) {
	assert.Equal(t, "", detailOf(nil))
	assert.Equal(t, "boom", detailOf(errors.New("boom")))
}
