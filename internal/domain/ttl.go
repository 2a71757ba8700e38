package domain

import "time"

// Default cache windows per resource kind. Registration is the only kind with
// an instability-aware policy; the rest are flat.
const (
	TTLRegistrationDefault = 7 * 24 * time.Hour
	TTLDNS                 = time.Hour
	TTLCertificates        = 24 * time.Hour
	TTLHeaders             = 24 * time.Hour
	TTLSEO                 = 24 * time.Hour
	TTLFavicon             = 7 * 24 * time.Hour
)

// RegistrationTTL shortens the cache window as the registration approaches its
// real-world expiry so a renewal or drop is noticed promptly.
func RegistrationTTL(now time.Time, expiresAt *time.Time) time.Duration {
	if expiresAt == nil {
		return TTLRegistrationDefault
	}
	until := expiresAt.Sub(now)
	switch {
	case until <= 0:
		return time.Hour
	case until <= 7*24*time.Hour:
		return 3 * time.Hour
	case until <= 30*24*time.Hour:
		return 12 * time.Hour
	case until <= 90*24*time.Hour:
		return 24 * time.Hour
	default:
		return TTLRegistrationDefault
	}
}
