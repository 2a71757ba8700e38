package domain

import "time"

// VerificationMethod is the proof used to claim ownership of a tracked domain.
type VerificationMethod string

const (
	VerifyDNSTXT   VerificationMethod = "dns_txt"
	VerifyHTMLFile VerificationMethod = "html_file"
	VerifyMetaTag  VerificationMethod = "meta_tag"
)

// VerificationStatus is the lifecycle state of ownership verification.
type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationVerified   VerificationStatus = "verified"
	VerificationFailing    VerificationStatus = "failing"
)

// MaxVerificationFailures is the grace budget: a verified domain that fails
// re-verification moves to failing but keeps Verified until the budget is
// exhausted, at which point verification is revoked.
const MaxVerificationFailures = 3

// TrackedDomain is a user-owned monitoring subscription for one domain.
// Archived domains are soft-deleted and do not count against plan limits.
type TrackedDomain struct {
	ID                 int64              `db:"id"`
	UserID             string             `db:"user_id"`
	DomainID           int64              `db:"domain_id"`
	DomainName         string             `db:"domain_name"`
	Verified           bool               `db:"verified"`
	VerificationMethod VerificationMethod `db:"verification_method"`
	VerificationStatus VerificationStatus `db:"verification_status"`
	VerificationToken  string             `db:"verification_token"`
	FailedChecks       int                `db:"failed_checks"`
	NotifyEmail        bool               `db:"notify_email"`
	NotifyInApp        bool               `db:"notify_in_app"`
	LastCheckedAt      *time.Time         `db:"last_checked_at"`
	ArchivedAt         *time.Time         `db:"archived_at"`
	CreatedAt          time.Time          `db:"created_at"`
	UpdatedAt          time.Time          `db:"updated_at"`
}

// Snapshot is the last-known normalized state of a tracked domain, used only
// as the change-detection baseline. It is written after a change has been
// detected and successfully notified, never on a bare re-fetch, so a failed
// notification is retried on the next monitoring pass.
type Snapshot struct {
	TrackedDomainID   int64                 `db:"tracked_domain_id"`
	Registration      *RegistrationSnapshot `json:"registration,omitempty"`
	Certificate       *CertificateSnapshot  `json:"certificate,omitempty"`
	DNSProviderID     *int64                `json:"dnsProviderId,omitempty"`
	HostingProviderID *int64                `json:"hostingProviderId,omitempty"`
	EmailProviderID   *int64                `json:"emailProviderId,omitempty"`
	UpdatedAt         time.Time             `db:"updated_at" json:"-"`
}

// RegistrationSnapshot is the registration subset that change detection
// compares between monitoring passes.
type RegistrationSnapshot struct {
	Registrar           string     `json:"registrar,omitempty"`
	RegistrarProviderID *int64     `json:"registrarProviderId,omitempty"`
	Nameservers         []string   `json:"nameservers,omitempty"`
	TransferLock        bool       `json:"transferLock"`
	Statuses            []string   `json:"statuses,omitempty"`
	ExpiresAt           *time.Time `json:"expiresAt,omitempty"`
}

// CertificateSnapshot is the leaf-certificate subset compared between passes.
type CertificateSnapshot struct {
	Issuer       string     `json:"issuer,omitempty"`
	CAProviderID *int64     `json:"caProviderId,omitempty"`
	ValidTo      *time.Time `json:"validTo,omitempty"`
}
