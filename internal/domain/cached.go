package domain

import "time"

// Cached wraps a stored resource with its freshness metadata. Data is non-nil
// only for a definitive result, which may be an explicit "confirmed absent"
// marker. Stale means data is present but past ExpiresAt; callers still serve
// it and refresh in the background rather than blocking.
type Cached[T any] struct {
	Data      *T
	Stale     bool
	FetchedAt *time.Time
	ExpiresAt *time.Time
}

// Fresh reports whether the entry holds data that has not expired.
func (c Cached[T]) Fresh() bool {
	return c.Data != nil && !c.Stale
}
