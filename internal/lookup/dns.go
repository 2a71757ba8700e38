package lookup

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jakejarvis/domainstack.io-sub006/internal/doh"
	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

var queriedTypes = []struct {
	code int
	kind domain.DNSRecordType
}{
	{doh.TypeA, domain.RecordA},
	{doh.TypeAAAA, domain.RecordAAAA},
	{doh.TypeMX, domain.RecordMX},
	{doh.TypeTXT, domain.RecordTXT},
	{doh.TypeNS, domain.RecordNS},
}

// DNSClient queries the record types the report needs and normalizes the
// answers into a deterministic record set.
type DNSClient struct {
	resolver *doh.Resolver
}

func NewDNSClient(resolver *doh.Resolver) *DNSClient {
	return &DNSClient{resolver: resolver}
}

// Lookup fetches A, AAAA, MX, TXT and NS records concurrently. Exact
// (type, name, value) duplicates are dropped (providers double-report), MX
// records at different priorities are kept apart, and A/AAAA values are
// sorted lexicographically so repeated lookups of an unchanged zone yield an
// identical set.
func (c *DNSClient) Lookup(ctx context.Context, name string) ([]domain.DNSRecord, error) {
	answerSets := make([][]doh.Answer, len(queriedTypes))

	g, gctx := errgroup.WithContext(ctx)
	for i, qt := range queriedTypes {
		g.Go(func() error {
			answers, err := c.resolver.Query(gctx, name, qt.code)
			if err != nil {
				return fmt.Errorf("query %s: %w", qt.kind, err)
			}
			answerSets[i] = answers
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if isTimeout(ctx, err) {
			return nil, temporary("dns", "timeout", err)
		}
		return nil, temporary("dns", "retry", err)
	}

	var records []domain.DNSRecord
	for i, qt := range queriedTypes {
		for _, a := range answerSets[i] {
			rec, ok := normalizeAnswer(qt.kind, a)
			if ok {
				records = append(records, rec)
			}
		}
	}

	records = dedupeRecords(records)
	sortAddressRecords(records)
	return records, nil
}

func normalizeAnswer(kind domain.DNSRecordType, a doh.Answer) (domain.DNSRecord, bool) {
	rec := domain.DNSRecord{
		Type: kind,
		Name: strings.ToLower(strings.TrimSuffix(a.Name, ".")),
	}
	if a.TTL > 0 {
		ttl := a.TTL
		rec.TTL = &ttl
	}

	value := strings.TrimSpace(a.Data)
	switch kind {
	case domain.RecordMX:
		// "10 mail.example.com."
		parts := strings.Fields(value)
		if len(parts) != 2 {
			return rec, false
		}
		prio, err := strconv.ParseUint(parts[0], 10, 16)
		if err != nil {
			return rec, false
		}
		p := uint16(prio)
		rec.Priority = &p
		rec.Value = strings.ToLower(strings.TrimSuffix(parts[1], "."))
	case domain.RecordNS:
		rec.Value = strings.ToLower(strings.TrimSuffix(value, "."))
	case domain.RecordTXT:
		rec.Value = strings.Trim(value, `"`)
	default:
		rec.Value = value
	}

	return rec, rec.Value != ""
}

// dedupeRecords drops exact duplicates while preserving first-seen order.
// Priority is part of the identity, so same-host MX records at different
// priorities both survive.
func dedupeRecords(records []domain.DNSRecord) []domain.DNSRecord {
	seen := make(map[string]struct{}, len(records))
	out := records[:0]
	for _, r := range records {
		prio := -1
		if r.Priority != nil {
			prio = int(*r.Priority)
		}
		key := fmt.Sprintf("%s|%s|%s|%d", r.Type, r.Name, r.Value, prio)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

// sortAddressRecords orders A and AAAA values lexicographically in place,
// leaving the relative order of the other types untouched. Upstream answer
// order is not stable and would otherwise cause spurious diffs.
func sortAddressRecords(records []domain.DNSRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Type != b.Type {
			return false
		}
		if a.Type != domain.RecordA && a.Type != domain.RecordAAAA {
			return false
		}
		return a.Value < b.Value
	})
}

// RecordValues extracts the values of one record type in set order.
func RecordValues(records []domain.DNSRecord, kind domain.DNSRecordType) []string {
	var values []string
	for _, r := range records {
		if r.Type == kind {
			values = append(values, r.Value)
		}
	}
	return values
}
