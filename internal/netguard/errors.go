package netguard

import (
	"errors"
	"fmt"
)

// FetchErrorKind is the closed failure taxonomy of SafeFetch. Every kind is
// terminal and typed; the client never retries internally, callers classify
// retryable vs. permanent.
type FetchErrorKind string

const (
	ErrInvalidURL         FetchErrorKind = "invalid_url"
	ErrProtocolNotAllowed FetchErrorKind = "protocol_not_allowed"
	ErrHostNotAllowed     FetchErrorKind = "host_not_allowed"
	ErrHostBlocked        FetchErrorKind = "host_blocked"
	ErrDNS                FetchErrorKind = "dns_error"
	ErrPrivateIP          FetchErrorKind = "private_ip"
	ErrRedirectLimit      FetchErrorKind = "redirect_limit"
	ErrInvalidResponse    FetchErrorKind = "invalid_response"
	ErrSizeExceeded       FetchErrorKind = "size_exceeded"
)

// FetchError is a typed SafeFetch failure.
type FetchError struct {
	Kind FetchErrorKind
	URL  string
	Err  error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("safefetch %s: %s: %v", e.Kind, e.URL, e.Err)
	}
	return fmt.Sprintf("safefetch %s: %s", e.Kind, e.URL)
}

func (e *FetchError) Unwrap() error { return e.Err }

func fetchErr(kind FetchErrorKind, url string, err error) *FetchError {
	return &FetchError{Kind: kind, URL: url, Err: err}
}

// KindOf extracts the taxonomy kind from an error, or "" if the error did not
// come from SafeFetch.
func KindOf(err error) FetchErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
