package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
	"github.com/jakejarvis/domainstack.io-sub006/internal/netguard"
)

const defaultRDAPBase = "https://rdap.org/domain/"

// RegistrarResolver attributes a registrar string to a provider row.
type RegistrarResolver interface {
	DetectRegistrar(ctx context.Context, registrar string) (*int64, error)
}

// RegistrationClient looks up registration data over RDAP, normalizing the
// bootstrap aggregator's response.
type RegistrationClient struct {
	fetch      Fetcher
	registrars RegistrarResolver
	base       string
	timeout    time.Duration
	logger     *slog.Logger
}

func NewRegistrationClient(fetch Fetcher, registrars RegistrarResolver, timeout time.Duration, logger *slog.Logger) *RegistrationClient {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &RegistrationClient{
		fetch:      fetch,
		registrars: registrars,
		base:       defaultRDAPBase,
		timeout:    timeout,
		logger:     logger.With("step", "registration"),
	}
}

// Lookup fetches and normalizes the RDAP record. An unregistered domain is a
// successful result with Registered=false, never an error. Failures are
// classified: unsupported_tld permanent, timeout and upstream flakiness
// temporary.
func (c *RegistrationClient) Lookup(ctx context.Context, name string) (*domain.Registration, error) {
	res, err := c.fetch.Fetch(ctx, c.base+name, netguard.Options{
		Method:   http.MethodGet,
		Header:   http.Header{"Accept": []string{"application/rdap+json"}},
		Timeout:  c.timeout,
		MaxBytes: 1 << 20,
	})
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, temporary("registration", "timeout", err)
		}
		return nil, temporary("registration", "retry", err)
	}

	switch {
	case res.Status == http.StatusNotFound:
		return &domain.Registration{Registered: false}, nil
	case res.Status == http.StatusBadRequest:
		// The bootstrap aggregator answers 400 for TLDs with no RDAP service.
		return nil, permanent("registration", "unsupported_tld", ErrUnsupportedTLD)
	case res.Status == http.StatusTooManyRequests || res.Status >= 500:
		return nil, temporary("registration", "retry", fmt.Errorf("rdap status %d", res.Status))
	case !res.OK:
		return nil, temporary("registration", "retry", fmt.Errorf("rdap status %d", res.Status))
	}

	var raw rdapResponse
	if err := json.Unmarshal(res.Body, &raw); err != nil {
		return nil, temporary("registration", "retry", fmt.Errorf("parse rdap response: %w", err))
	}

	reg := raw.normalize(res.FinalURL)

	if reg.Registrar != "" && c.registrars != nil {
		id, err := c.registrars.DetectRegistrar(ctx, reg.Registrar)
		if err != nil {
			c.logger.Warn("registrar attribution failed", "domain", name, "error", err)
		} else {
			reg.RegistrarProviderID = id
		}
	}

	return reg, nil
}

type rdapResponse struct {
	LdhName     string      `json:"ldhName"`
	Status      []string    `json:"status"`
	Events      []rdapEvent `json:"events"`
	Entities    []rdapEntity `json:"entities"`
	Nameservers []struct {
		LdhName string `json:"ldhName"`
	} `json:"nameservers"`
	SecureDNS struct {
		DelegationSigned bool `json:"delegationSigned"`
	} `json:"secureDNS"`
}

type rdapEvent struct {
	Action string `json:"eventAction"`
	Date   string `json:"eventDate"`
}

type rdapEntity struct {
	Roles      []string        `json:"roles"`
	VCardArray json.RawMessage `json:"vcardArray"`
	Entities   []rdapEntity    `json:"entities"`
}

func (r *rdapResponse) normalize(source string) *domain.Registration {
	reg := &domain.Registration{
		Registered: true,
		Statuses:   r.Status,
		DNSSEC:     r.SecureDNS.DelegationSigned,
		Source:     source,
	}

	for _, ev := range r.Events {
		t, err := time.Parse(time.RFC3339, ev.Date)
		if err != nil {
			continue
		}
		ts := t
		switch ev.Action {
		case "registration":
			reg.RegisteredAt = &ts
		case "expiration":
			reg.ExpiresAt = &ts
		case "last changed":
			reg.UpdatedAt = &ts
		}
	}

	for _, ns := range r.Nameservers {
		host := strings.ToLower(strings.TrimSuffix(ns.LdhName, "."))
		if host != "" {
			reg.Nameservers = append(reg.Nameservers, host)
		}
	}

	reg.Registrar = findRegistrar(r.Entities)

	for _, status := range r.Status {
		if strings.EqualFold(strings.ReplaceAll(status, " ", ""), "clientTransferProhibited") {
			reg.TransferLock = true
		}
	}

	return reg
}

func findRegistrar(entities []rdapEntity) string {
	for _, e := range entities {
		for _, role := range e.Roles {
			if role == "registrar" {
				if name := vcardFullName(e.VCardArray); name != "" {
					return name
				}
			}
		}
		if name := findRegistrar(e.Entities); name != "" {
			return name
		}
	}
	return ""
}

// vcardFullName extracts the "fn" property from a jCard array:
// ["vcard", [["fn", {}, "text", "Registrar Inc."], ...]].
func vcardFullName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var card []json.RawMessage
	if err := json.Unmarshal(raw, &card); err != nil || len(card) < 2 {
		return ""
	}
	var props [][]json.RawMessage
	if err := json.Unmarshal(card[1], &props); err != nil {
		return ""
	}
	for _, prop := range props {
		if len(prop) < 4 {
			continue
		}
		var key string
		if err := json.Unmarshal(prop[0], &key); err != nil || key != "fn" {
			continue
		}
		var value string
		if err := json.Unmarshal(prop[3], &value); err == nil && value != "" {
			return value
		}
	}
	return ""
}
