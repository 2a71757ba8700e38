package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakejarvis/domainstack.io-sub006/internal/doh"
	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

func TestNormalizeAnswerMX(t *testing.T) {
	rec, ok := normalizeAnswer(domain.RecordMX, doh.Answer{
		Name: "Example.com.",
		Type: doh.TypeMX,
		TTL:  3600,
		Data: "10 ASPMX.L.Google.com.",
	})
	require.True(t, ok)
	assert.Equal(t, "example.com", rec.Name)
	assert.Equal(t, "aspmx.l.google.com", rec.Value)
	require.NotNil(t, rec.Priority)
	assert.Equal(t, uint16(10), *rec.Priority)
	require.NotNil(t, rec.TTL)
	assert.Equal(t, uint32(3600), *rec.TTL)

	_, ok = normalizeAnswer(domain.RecordMX, doh.Answer{Data: "not-a-priority mail.example.com"})
	assert.False(t, ok)

	_, ok = normalizeAnswer(domain.RecordMX, doh.Answer{Data: "10"})
	assert.False(t, ok)
}

func TestNormalizeAnswerTXT(t *testing.T) {
	rec, ok := normalizeAnswer(domain.RecordTXT, doh.Answer{
		Name: "example.com.",
		Data: `"v=spf1 include:_spf.google.com ~all"`,
	})
	require.True(t, ok)
	assert.Equal(t, "v=spf1 include:_spf.google.com ~all", rec.Value)
}

func TestNormalizeAnswerNS(t *testing.T) {
	rec, ok := normalizeAnswer(domain.RecordNS, doh.Answer{
		Name: "example.com.",
		Data: "NS1.Example-DNS.NET.",
	})
	require.True(t, ok)
	assert.Equal(t, "ns1.example-dns.net", rec.Value)
}

func TestNormalizeAnswerZeroTTL(t *testing.T) {
	rec, ok := normalizeAnswer(domain.RecordA, doh.Answer{
		Name: "example.com.",
		Data: "93.184.216.34",
	})
	require.True(t, ok)
	assert.Nil(t, rec.TTL)
}

func TestDedupeRecordsKeepsMXPriorities(t *testing.T) {
	p10, p20 := uint16(10), uint16(20)
	records := []domain.DNSRecord{
		{Type: domain.RecordMX, Name: "example.com", Value: "mx.example.com", Priority: &p10},
		{Type: domain.RecordMX, Name: "example.com", Value: "mx.example.com", Priority: &p20},
		{Type: domain.RecordMX, Name: "example.com", Value: "mx.example.com", Priority: &p10},
		{Type: domain.RecordA, Name: "example.com", Value: "93.184.216.34"},
		{Type: domain.RecordA, Name: "example.com", Value: "93.184.216.34"},
	}

	out := dedupeRecords(records)
	require.Len(t, out, 3)
	assert.Equal(t, &p10, out[0].Priority)
	assert.Equal(t, &p20, out[1].Priority)
	assert.Equal(t, domain.RecordA, out[2].Type)
}

func TestSortAddressRecords(t *testing.T) {
	records := []domain.DNSRecord{
		{Type: domain.RecordA, Value: "93.184.216.34"},
		{Type: domain.RecordA, Value: "23.192.228.80"},
		{Type: domain.RecordNS, Value: "zns.example.net"},
		{Type: domain.RecordNS, Value: "ans.example.net"},
	}

	sortAddressRecords(records)

	assert.Equal(t, "23.192.228.80", records[0].Value)
	assert.Equal(t, "93.184.216.34", records[1].Value)
	// NS order is zone order; it must survive the sort untouched.
	assert.Equal(t, "zns.example.net", records[2].Value)
	assert.Equal(t, "ans.example.net", records[3].Value)
}

func TestRecordValues(t *testing.T) {
	records := []domain.DNSRecord{
		{Type: domain.RecordNS, Value: "ns1.example.net"},
		{Type: domain.RecordA, Value: "93.184.216.34"},
		{Type: domain.RecordNS, Value: "ns2.example.net"},
	}

	assert.Equal(t, []string{"ns1.example.net", "ns2.example.net"}, RecordValues(records, domain.RecordNS))
	assert.Nil(t, RecordValues(records, domain.RecordMX))
}
