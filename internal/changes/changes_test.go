package changes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

func ptrTime(t time.Time) *time.Time { return &t }
func ptrID(id int64) *int64          { return &id }

func TestDetectRegistrationChangesBaseline(t *testing.T) {
	curr := &domain.RegistrationSnapshot{Registrar: "Gandi SAS"}
	assert.Nil(t, DetectRegistrationChanges(nil, curr))
	assert.Nil(t, DetectRegistrationChanges(curr, nil))
}

func TestDetectRegistrationChangesNoChange(t *testing.T) {
	expires := time.Date(2026, 8, 13, 4, 0, 0, 0, time.UTC)
	snap := func() *domain.RegistrationSnapshot {
		return &domain.RegistrationSnapshot{
			Registrar:    "Gandi SAS",
			Nameservers:  []string{"ns1.example.net", "ns2.example.net"},
			TransferLock: true,
			Statuses:     []string{"clientTransferProhibited"},
			ExpiresAt:    ptrTime(expires),
		}
	}
	assert.Nil(t, DetectRegistrationChanges(snap(), snap()))
}

func TestDetectRegistrationChangesNameserverReorderDoesNotFire(t *testing.T) {
	prev := &domain.RegistrationSnapshot{Nameservers: []string{"ns1.example.net", "ns2.example.net"}}
	curr := &domain.RegistrationSnapshot{Nameservers: []string{"NS2.example.net", "ns1.example.net"}}
	assert.Nil(t, DetectRegistrationChanges(prev, curr))
}

func TestDetectRegistrationChangesNameserverSwap(t *testing.T) {
	prev := &domain.RegistrationSnapshot{Nameservers: []string{"ns1.old-dns.net", "ns2.old-dns.net"}}
	curr := &domain.RegistrationSnapshot{Nameservers: []string{"kim.ns.cloudflare.com", "abe.ns.cloudflare.com"}}

	cs := DetectRegistrationChanges(prev, curr)
	require.NotNil(t, cs)
	assert.Equal(t, domain.NotifyRegistrationChanged, cs.Type)
	require.Len(t, cs.Fields, 1)
	assert.Equal(t, "nameservers", cs.Fields[0].Field)
	assert.Equal(t, "ns1.old-dns.net, ns2.old-dns.net", cs.Fields[0].Before)
	// Reported values keep fetched order, not sorted order.
	assert.Equal(t, "kim.ns.cloudflare.com, abe.ns.cloudflare.com", cs.Fields[0].After)
}

func TestDetectRegistrationChangesMultipleFields(t *testing.T) {
	prev := &domain.RegistrationSnapshot{
		Registrar:    "Old Registrar",
		TransferLock: true,
		ExpiresAt:    ptrTime(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	curr := &domain.RegistrationSnapshot{
		Registrar:    "New Registrar",
		TransferLock: false,
		ExpiresAt:    ptrTime(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	cs := DetectRegistrationChanges(prev, curr)
	require.NotNil(t, cs)
	require.Len(t, cs.Fields, 3)
	assert.Equal(t, "registrar", cs.Fields[0].Field)
	assert.Equal(t, "transfer_lock", cs.Fields[1].Field)
	assert.Equal(t, "true", cs.Fields[1].Before)
	assert.Equal(t, "false", cs.Fields[1].After)
	assert.Equal(t, "expires_at", cs.Fields[2].Field)
	assert.Equal(t, "2027-01-01T00:00:00Z", cs.Fields[2].After)
}

func TestDetectRegistrationChangesIsDeterministic(t *testing.T) {
	prev := &domain.RegistrationSnapshot{Registrar: "Old"}
	curr := &domain.RegistrationSnapshot{Registrar: "New"}

	first := DetectRegistrationChanges(prev, curr)
	second := DetectRegistrationChanges(prev, curr)
	assert.Equal(t, first, second)
	assert.Equal(t, Hash(first), Hash(second))
}

func TestDetectProviderChanges(t *testing.T) {
	prev := &domain.Snapshot{
		DNSProviderID:     ptrID(1),
		HostingProviderID: ptrID(2),
		EmailProviderID:   nil,
	}
	curr := &domain.Snapshot{
		DNSProviderID:     ptrID(9),
		HostingProviderID: ptrID(2),
		EmailProviderID:   ptrID(3),
	}

	cs := DetectProviderChanges(prev, curr)
	require.NotNil(t, cs)
	assert.Equal(t, domain.NotifyProvidersChanged, cs.Type)
	require.Len(t, cs.Fields, 2)
	assert.Equal(t, "dns_provider", cs.Fields[0].Field)
	assert.Equal(t, "provider:1", cs.Fields[0].Before)
	assert.Equal(t, "provider:9", cs.Fields[0].After)
	assert.Equal(t, "email_provider", cs.Fields[1].Field)
	assert.Equal(t, "", cs.Fields[1].Before)

	assert.Nil(t, DetectProviderChanges(curr, curr))
}

func TestDetectCertificateChanges(t *testing.T) {
	prev := &domain.CertificateSnapshot{
		Issuer:  "CN=R10,O=Let's Encrypt,C=US",
		ValidTo: ptrTime(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)),
	}

	// Renewal by the same issuer still fires on valid_to.
	renewed := &domain.CertificateSnapshot{
		Issuer:  "CN=R10,O=Let's Encrypt,C=US",
		ValidTo: ptrTime(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
	}
	cs := DetectCertificateChanges(prev, renewed)
	require.NotNil(t, cs)
	assert.Equal(t, domain.NotifyCertificateChanged, cs.Type)
	require.Len(t, cs.Fields, 1)
	assert.Equal(t, "valid_to", cs.Fields[0].Field)

	assert.Nil(t, DetectCertificateChanges(prev, prev))
	assert.Nil(t, DetectCertificateChanges(nil, renewed))
}

func TestRegistrationSnapshotProjection(t *testing.T) {
	assert.Nil(t, RegistrationSnapshot(nil))
	assert.Nil(t, RegistrationSnapshot(&domain.Registration{Registered: false}))

	expires := time.Date(2026, 8, 13, 4, 0, 0, 0, time.UTC)
	snap := RegistrationSnapshot(&domain.Registration{
		Registered:   true,
		Registrar:    "Gandi SAS",
		Nameservers:  []string{"ns1.example.net"},
		TransferLock: true,
		ExpiresAt:    &expires,
	})
	require.NotNil(t, snap)
	assert.Equal(t, "Gandi SAS", snap.Registrar)
	assert.True(t, snap.TransferLock)
	assert.Equal(t, &expires, snap.ExpiresAt)
}

func TestCertificateSnapshotProjection(t *testing.T) {
	assert.Nil(t, CertificateSnapshot(nil))

	validTo := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	snap := CertificateSnapshot([]domain.Certificate{
		{Issuer: "leaf issuer", ValidTo: validTo, CAProviderID: ptrID(7)},
		{Issuer: "intermediate"},
	})
	require.NotNil(t, snap)
	assert.Equal(t, "leaf issuer", snap.Issuer)
	assert.Equal(t, ptrID(7), snap.CAProviderID)
	require.NotNil(t, snap.ValidTo)
	assert.True(t, validTo.Equal(*snap.ValidTo))
}

func TestHashStability(t *testing.T) {
	cs := &ChangeSet{Type: domain.NotifyRegistrationChanged, Fields: []FieldChange{
		{Field: "registrar", Before: "Old", After: "New"},
	}}
	assert.Equal(t, Hash(cs), Hash(cs))
	assert.NotEqual(t, Hash(cs), Hash(&ChangeSet{Type: domain.NotifyProvidersChanged}))
	assert.Len(t, Hash(cs), 64)
}
