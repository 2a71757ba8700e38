package domain

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// Domain is a registrable domain name known to the system. A row is created on
// the first lookup of any kind and touched on every access; LastAccessedAt
// drives revalidation scheduling decay.
type Domain struct {
	ID             int64     `db:"id"`
	Name           string    `db:"name"` // canonical registrable form, ASCII
	TLD            string    `db:"tld"`
	Unicode        string    `db:"unicode_name"`
	LastAccessedAt time.Time `db:"last_accessed_at"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Canonicalize reduces raw user input to the registrable domain: lowercased,
// punycoded, stripped to eTLD+1. Returns the ASCII name, the public suffix and
// the Unicode display form.
func Canonicalize(raw string) (name, tld, unicode string, err error) {
	s := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(raw), "."))
	if s == "" {
		return "", "", "", fmt.Errorf("empty domain name")
	}

	ascii, err := idna.Lookup.ToASCII(s)
	if err != nil {
		return "", "", "", fmt.Errorf("punycode %q: %w", raw, err)
	}

	name, err = publicsuffix.EffectiveTLDPlusOne(ascii)
	if err != nil {
		return "", "", "", fmt.Errorf("registrable domain for %q: %w", raw, err)
	}

	tld, _ = publicsuffix.PublicSuffix(name)

	unicode, err = idna.Lookup.ToUnicode(name)
	if err != nil {
		unicode = name
	}

	return name, tld, unicode, nil
}
