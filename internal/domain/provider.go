package domain

import (
	"regexp"
	"strings"
	"time"
)

// ProviderCategory is the kind of infrastructure a provider supplies.
type ProviderCategory string

const (
	CategoryHosting   ProviderCategory = "hosting"
	CategoryEmail     ProviderCategory = "email"
	CategoryDNS       ProviderCategory = "dns"
	CategoryCA        ProviderCategory = "ca"
	CategoryRegistrar ProviderCategory = "registrar"
)

// ProviderSource records whether a provider row came from the curated catalog
// or was inferred from a raw network signal.
type ProviderSource string

const (
	SourceCatalog    ProviderSource = "catalog"
	SourceDiscovered ProviderSource = "discovered"
)

// Provider is an infrastructure provider a network signal can be attributed
// to. Unique per (category, slug). A catalog row always wins over a discovered
// one when both could match the same signal; a discovered row is upgraded in
// place to catalog when a curated entry later matches it, preserving the row
// ID so foreign keys keep pointing at it.
type Provider struct {
	ID        int64            `db:"id"`
	Category  ProviderCategory `db:"category"`
	Name      string           `db:"name"`
	Domain    *string          `db:"domain"`
	Slug      string           `db:"slug"`
	Source    ProviderSource   `db:"source"`
	UpdatedAt time.Time        `db:"updated_at"`
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the stable slug for a provider name.
func Slugify(name string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
