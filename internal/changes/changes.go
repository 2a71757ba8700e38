// Package changes compares a tracked domain's freshly fetched state against
// its last notified snapshot. Detection is pure: no I/O, no clock, identical
// inputs always produce identical output, so a retried monitoring pass
// cannot invent a second change.
package changes

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

// FieldChange is one human-readable difference.
type FieldChange struct {
	Field  string `json:"field"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// ChangeSet groups the differences that map to one notification.
type ChangeSet struct {
	Type   domain.NotificationType `json:"type"`
	Fields []FieldChange           `json:"fields"`
}

// DetectRegistrationChanges diffs two registration snapshots. A nil previous
// snapshot is the baseline pass and never a change. Nameservers are compared
// as a set, so registrar-side reordering does not fire, but the reported
// values keep the fetched order.
func DetectRegistrationChanges(prev, curr *domain.RegistrationSnapshot) *ChangeSet {
	if prev == nil || curr == nil {
		return nil
	}

	var fields []FieldChange
	if prev.Registrar != curr.Registrar {
		fields = append(fields, FieldChange{"registrar", prev.Registrar, curr.Registrar})
	}
	if !sameStringSet(prev.Nameservers, curr.Nameservers) {
		fields = append(fields, FieldChange{
			Field:  "nameservers",
			Before: strings.Join(prev.Nameservers, ", "),
			After:  strings.Join(curr.Nameservers, ", "),
		})
	}
	if prev.TransferLock != curr.TransferLock {
		fields = append(fields, FieldChange{
			Field:  "transfer_lock",
			Before: strconv.FormatBool(prev.TransferLock),
			After:  strconv.FormatBool(curr.TransferLock),
		})
	}
	if !sameStringSet(prev.Statuses, curr.Statuses) {
		fields = append(fields, FieldChange{
			Field:  "statuses",
			Before: strings.Join(prev.Statuses, ", "),
			After:  strings.Join(curr.Statuses, ", "),
		})
	}
	if !sameTime(prev.ExpiresAt, curr.ExpiresAt) {
		fields = append(fields, FieldChange{"expires_at", fmtTime(prev.ExpiresAt), fmtTime(curr.ExpiresAt)})
	}

	if len(fields) == 0 {
		return nil
	}
	return &ChangeSet{Type: domain.NotifyRegistrationChanged, Fields: fields}
}

// DetectProviderChanges diffs the attributed provider IDs.
func DetectProviderChanges(prev, curr *domain.Snapshot) *ChangeSet {
	if prev == nil || curr == nil {
		return nil
	}

	var fields []FieldChange
	if !sameID(prev.DNSProviderID, curr.DNSProviderID) {
		fields = append(fields, FieldChange{"dns_provider", fmtID(prev.DNSProviderID), fmtID(curr.DNSProviderID)})
	}
	if !sameID(prev.HostingProviderID, curr.HostingProviderID) {
		fields = append(fields, FieldChange{"hosting_provider", fmtID(prev.HostingProviderID), fmtID(curr.HostingProviderID)})
	}
	if !sameID(prev.EmailProviderID, curr.EmailProviderID) {
		fields = append(fields, FieldChange{"email_provider", fmtID(prev.EmailProviderID), fmtID(curr.EmailProviderID)})
	}

	if len(fields) == 0 {
		return nil
	}
	return &ChangeSet{Type: domain.NotifyProvidersChanged, Fields: fields}
}

// DetectCertificateChanges diffs two leaf-certificate snapshots. Routine
// renewal by the same issuer moves ValidTo and fires, which is intentional:
// the notification doubles as a renewal confirmation.
func DetectCertificateChanges(prev, curr *domain.CertificateSnapshot) *ChangeSet {
	if prev == nil || curr == nil {
		return nil
	}

	var fields []FieldChange
	if prev.Issuer != curr.Issuer {
		fields = append(fields, FieldChange{"issuer", prev.Issuer, curr.Issuer})
	}
	if !sameTime(prev.ValidTo, curr.ValidTo) {
		fields = append(fields, FieldChange{"valid_to", fmtTime(prev.ValidTo), fmtTime(curr.ValidTo)})
	}

	if len(fields) == 0 {
		return nil
	}
	return &ChangeSet{Type: domain.NotifyCertificateChanged, Fields: fields}
}

// RegistrationSnapshot projects a fetched registration onto the compared
// subset. Unregistered domains have no snapshot.
func RegistrationSnapshot(reg *domain.Registration) *domain.RegistrationSnapshot {
	if reg == nil || !reg.Registered {
		return nil
	}
	return &domain.RegistrationSnapshot{
		Registrar:           reg.Registrar,
		RegistrarProviderID: reg.RegistrarProviderID,
		Nameservers:         reg.Nameservers,
		TransferLock:        reg.TransferLock,
		Statuses:            reg.Statuses,
		ExpiresAt:           reg.ExpiresAt,
	}
}

// CertificateSnapshot projects the leaf of a fetched chain.
func CertificateSnapshot(chain []domain.Certificate) *domain.CertificateSnapshot {
	if len(chain) == 0 {
		return nil
	}
	leaf := chain[0]
	validTo := leaf.ValidTo
	return &domain.CertificateSnapshot{
		Issuer:       leaf.Issuer,
		CAProviderID: leaf.CAProviderID,
		ValidTo:      &validTo,
	}
}

func sameStringSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := lowered(a)
	bs := lowered(b)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func lowered(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func fmtID(id *int64) string {
	if id == nil {
		return ""
	}
	return fmt.Sprintf("provider:%d", *id)
}
