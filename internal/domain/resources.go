package domain

import "time"

// DNSRecordType enumerates the record types the DNS step queries.
type DNSRecordType string

const (
	RecordA    DNSRecordType = "A"
	RecordAAAA DNSRecordType = "AAAA"
	RecordMX   DNSRecordType = "MX"
	RecordTXT  DNSRecordType = "TXT"
	RecordNS   DNSRecordType = "NS"
)

// DNSRecord is one normalized answer. Priority participates in identity so
// multiple MX records for the same host at different priorities stay distinct.
type DNSRecord struct {
	Type     DNSRecordType `db:"type" json:"type"`
	Name     string        `db:"name" json:"name"`
	Value    string        `db:"value" json:"value"`
	TTL      *uint32       `db:"ttl" json:"ttl,omitempty"`
	Priority *uint16       `db:"priority" json:"priority,omitempty"`
}

// Registration is the normalized WHOIS/RDAP result for a registered domain.
type Registration struct {
	Registered          bool       `json:"registered"`
	Registrar           string     `json:"registrar,omitempty"`
	RegistrarProviderID *int64     `json:"registrarProviderId,omitempty"`
	Statuses            []string   `json:"statuses,omitempty"`
	Nameservers         []string   `json:"nameservers,omitempty"`
	TransferLock        bool       `json:"transferLock"`
	DNSSEC              bool       `json:"dnssec"`
	RegisteredAt        *time.Time `json:"registeredAt,omitempty"`
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"`
	ExpiresAt           *time.Time `json:"expiresAt,omitempty"`
	Source              string     `json:"source,omitempty"` // RDAP service that answered
}

// Certificate is one entry of a domain's TLS chain, leaf first.
type Certificate struct {
	Issuer       string     `db:"issuer" json:"issuer"`
	Subject      string     `db:"subject" json:"subject"`
	AltNames     []string   `json:"altNames,omitempty"`
	ValidFrom    time.Time  `db:"valid_from" json:"validFrom"`
	ValidTo      time.Time  `db:"valid_to" json:"validTo"`
	CAProviderID *int64     `db:"ca_provider_id" json:"caProviderId,omitempty"`
	SelfSigned   bool       `db:"self_signed" json:"selfSigned"`
	FetchedAt    *time.Time `json:"-"`
}

// Headers holds the security-relevant response headers of a domain's web
// endpoint, names canonicalized to lowercase and values trimmed.
type Headers map[string]string

// SEO is the parsed HTML/robots metadata of a domain's landing page.
type SEO struct {
	Title           string            `json:"title,omitempty"`
	Description     string            `json:"description,omitempty"`
	CanonicalURL    string            `json:"canonicalUrl,omitempty"`
	OpenGraph       map[string]string `json:"openGraph,omitempty"`
	Twitter         map[string]string `json:"twitter,omitempty"`
	PreviewImageURL string            `json:"previewImageUrl,omitempty"` // derived blob URL, never the origin URL
	Robots          *Robots           `json:"robots,omitempty"`
}

// Robots is the parsed robots.txt of a domain.
type Robots struct {
	Fetched  bool          `json:"fetched"`
	Sitemaps []string      `json:"sitemaps,omitempty"`
	Groups   []RobotsGroup `json:"groups,omitempty"`
}

// RobotsGroup is one user-agent block of a robots.txt file.
type RobotsGroup struct {
	UserAgents []string `json:"userAgents"`
	Allow      []string `json:"allow,omitempty"`
	Disallow   []string `json:"disallow,omitempty"`
}

// Hosting is the provider attribution derived from DNS records and headers.
type Hosting struct {
	HostingProviderID *int64 `json:"hostingProviderId,omitempty"`
	EmailProviderID   *int64 `json:"emailProviderId,omitempty"`
	DNSProviderID     *int64 `json:"dnsProviderId,omitempty"`
}
