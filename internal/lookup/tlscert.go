package lookup

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net"
	"net/netip"
	"time"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
	"github.com/jakejarvis/domainstack.io-sub006/internal/netguard"
)

// CertStatus classifies a certificate lookup outcome. A domain with a broken
// chain still produces a usable partial report, so failures are structured
// results rather than errors.
type CertStatus string

const (
	CertOK               CertStatus = "ok"
	CertDNSError         CertStatus = "dns_error"
	CertTLSError         CertStatus = "tls_error"
	CertConnectionFailed CertStatus = "connection_failed"
)

// CertResult is the outcome of one chain extraction.
type CertResult struct {
	Status CertStatus
	Chain  []domain.Certificate
	Detail string
}

// CertificateClient extracts a domain's full presented chain with a raw TLS
// handshake, not an HTTP request.
type CertificateClient struct {
	resolver netguard.AddrResolver
	timeout  time.Duration
}

func NewCertificateClient(resolver netguard.AddrResolver, timeout time.Duration) *CertificateClient {
	if timeout == 0 {
		timeout = 8 * time.Second
	}
	return &CertificateClient{resolver: resolver, timeout: timeout}
}

// Lookup connects to port 443 and captures the peer chain, leaf first,
// walking issuers until a self-referencing root. Verification is skipped on
// purpose: an expired or mis-issued chain is exactly what the caller wants to
// see.
func (c *CertificateClient) Lookup(ctx context.Context, name string) (*CertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	addrs, err := c.resolver.LookupAddrs(ctx, name)
	if err != nil || len(addrs) == 0 {
		return &CertResult{Status: CertDNSError, Detail: detailOf(err)}, nil
	}

	var addr netip.Addr
	found := false
	for _, a := range addrs {
		if netguard.IsPublicUnicast(a) {
			addr, found = a, true
			break
		}
	}
	if !found {
		return &CertResult{Status: CertDNSError, Detail: "no public address"}, nil
	}

	dialer := &net.Dialer{Timeout: c.timeout}
	rawConn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(addr.String(), "443"))
	if err != nil {
		return &CertResult{Status: CertConnectionFailed, Detail: detailOf(err)}, nil
	}
	defer rawConn.Close()

	conn := tls.Client(rawConn, &tls.Config{
		ServerName:         name,
		InsecureSkipVerify: true,
	})
	if err := conn.HandshakeContext(ctx); err != nil {
		return &CertResult{Status: CertTLSError, Detail: detailOf(err)}, nil
	}

	peer := conn.ConnectionState().PeerCertificates
	chain := make([]domain.Certificate, 0, len(peer))
	for _, cert := range peer {
		entry := normalizeCert(cert)
		chain = append(chain, entry)
		if entry.SelfSigned {
			break
		}
	}

	return &CertResult{Status: CertOK, Chain: chain}, nil
}

func normalizeCert(cert *x509.Certificate) domain.Certificate {
	return domain.Certificate{
		Issuer:     cert.Issuer.String(),
		Subject:    cert.Subject.String(),
		AltNames:   cert.DNSNames,
		ValidFrom:  cert.NotBefore,
		ValidTo:    cert.NotAfter,
		SelfSigned: cert.Subject.String() == cert.Issuer.String(),
	}
}

func detailOf(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
