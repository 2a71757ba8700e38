// Package lookup contains the external-lookup steps: registration
// (WHOIS/RDAP), DNS records, TLS certificate chains, HTTP headers and SEO
// metadata. Each step performs exactly one class of external I/O, normalizes
// the upstream shape and classifies its own failures into temporary vs.
// permanent; orchestrators only ever see that classification.
package lookup

import (
	"context"
	"errors"
	"fmt"

	"github.com/jakejarvis/domainstack.io-sub006/internal/netguard"
)

// Fetcher is the outbound HTTP primitive the steps share. Every implementation
// is expected to enforce the hardened-fetch validation rules.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, opts netguard.Options) (*netguard.Result, error)
}

// ErrUnsupportedTLD marks a registry without a public RDAP/WHOIS service.
// Permanent and expected; not worth alerting on.
var ErrUnsupportedTLD = errors.New("unsupported tld")

// Error is a classified step failure.
type Error struct {
	Step      string
	Reason    string
	Temporary bool
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s lookup %s: %v", e.Step, e.Reason, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsTemporary reports whether the step considers the failure retryable.
func IsTemporary(err error) bool {
	var le *Error
	if errors.As(err, &le) {
		return le.Temporary
	}
	return false
}

func temporary(step, reason string, err error) *Error {
	return &Error{Step: step, Reason: reason, Temporary: true, Err: err}
}

func permanent(step, reason string, err error) *Error {
	return &Error{Step: step, Reason: reason, Temporary: false, Err: err}
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return ctx.Err() != nil && errors.Is(ctx.Err(), context.DeadlineExceeded)
}
