// Package providers attributes raw network signals (headers, MX/NS hosts,
// certificate issuers, registrar strings) to named infrastructure providers
// via a small rule DSL evaluated against a detection context.
package providers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// DetectionContext carries the signals a rule can inspect. Evaluation is pure
// so rules run both forward (classify a fresh signal) and backward (test a
// catalog rule against an already-discovered provider for merging).
type DetectionContext struct {
	Header     http.Header
	MXHosts    []string
	NSHosts    []string
	CertIssuer string
	Registrar  string
}

// Rule is one node of a provider-detection rule tree.
type Rule interface {
	Match(ctx DetectionContext) bool
}

// HeaderPresent matches when the named response header exists.
type HeaderPresent struct {
	Name string
}

func (r HeaderPresent) Match(ctx DetectionContext) bool {
	if ctx.Header == nil {
		return false
	}
	return ctx.Header.Get(r.Name) != ""
}

// MXSuffix matches when any MX hostname ends with the suffix.
type MXSuffix struct {
	Suffix string
}

func (r MXSuffix) Match(ctx DetectionContext) bool {
	return anyHostSuffix(ctx.MXHosts, r.Suffix)
}

// NSSuffix matches when any NS hostname ends with the suffix.
type NSSuffix struct {
	Suffix string
}

func (r NSSuffix) Match(ctx DetectionContext) bool {
	return anyHostSuffix(ctx.NSHosts, r.Suffix)
}

// IssuerContains matches a substring of the certificate issuer.
type IssuerContains struct {
	Substr string
}

func (r IssuerContains) Match(ctx DetectionContext) bool {
	return containsFold(ctx.CertIssuer, r.Substr)
}

// RegistrarContains matches a substring of the registrar name.
type RegistrarContains struct {
	Substr string
}

func (r RegistrarContains) Match(ctx DetectionContext) bool {
	return containsFold(ctx.Registrar, r.Substr)
}

// AnyOf matches when at least one child matches.
type AnyOf struct {
	Rules []Rule
}

func (r AnyOf) Match(ctx DetectionContext) bool {
	for _, child := range r.Rules {
		if child.Match(ctx) {
			return true
		}
	}
	return false
}

// AllOf matches when every child matches.
type AllOf struct {
	Rules []Rule
}

func (r AllOf) Match(ctx DetectionContext) bool {
	for _, child := range r.Rules {
		if !child.Match(ctx) {
			return false
		}
	}
	return len(r.Rules) > 0
}

func anyHostSuffix(hosts []string, suffix string) bool {
	suffix = strings.ToLower(strings.TrimSuffix(suffix, "."))
	for _, h := range hosts {
		h = strings.ToLower(strings.TrimSuffix(h, "."))
		if h == suffix || strings.HasSuffix(h, "."+suffix) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// RuleSpec wraps a Rule for JSON (de)serialization using a kind
// discriminator, e.g. {"kind":"mx_suffix","value":"googlemail.com"} or
// {"kind":"any_of","rules":[...]}.
type RuleSpec struct {
	Rule Rule
}

type ruleJSON struct {
	Kind  string            `json:"kind"`
	Value string            `json:"value,omitempty"`
	Rules []json.RawMessage `json:"rules,omitempty"`
}

func (s *RuleSpec) UnmarshalJSON(data []byte) error {
	var raw ruleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.Kind {
	case "header_present":
		s.Rule = HeaderPresent{Name: raw.Value}
	case "mx_suffix":
		s.Rule = MXSuffix{Suffix: raw.Value}
	case "ns_suffix":
		s.Rule = NSSuffix{Suffix: raw.Value}
	case "issuer_contains":
		s.Rule = IssuerContains{Substr: raw.Value}
	case "registrar_contains":
		s.Rule = RegistrarContains{Substr: raw.Value}
	case "any_of", "all_of":
		children := make([]Rule, 0, len(raw.Rules))
		for _, childData := range raw.Rules {
			var child RuleSpec
			if err := child.UnmarshalJSON(childData); err != nil {
				return err
			}
			children = append(children, child.Rule)
		}
		if raw.Kind == "any_of" {
			s.Rule = AnyOf{Rules: children}
		} else {
			s.Rule = AllOf{Rules: children}
		}
	default:
		return fmt.Errorf("unknown rule kind %q", raw.Kind)
	}
	return nil
}

func (s RuleSpec) MarshalJSON() ([]byte, error) {
	switch r := s.Rule.(type) {
	case HeaderPresent:
		return json.Marshal(ruleJSON{Kind: "header_present", Value: r.Name})
	case MXSuffix:
		return json.Marshal(ruleJSON{Kind: "mx_suffix", Value: r.Suffix})
	case NSSuffix:
		return json.Marshal(ruleJSON{Kind: "ns_suffix", Value: r.Suffix})
	case IssuerContains:
		return json.Marshal(ruleJSON{Kind: "issuer_contains", Value: r.Substr})
	case RegistrarContains:
		return json.Marshal(ruleJSON{Kind: "registrar_contains", Value: r.Substr})
	case AnyOf:
		return marshalTree("any_of", r.Rules)
	case AllOf:
		return marshalTree("all_of", r.Rules)
	default:
		return nil, fmt.Errorf("unknown rule type %T", s.Rule)
	}
}

func marshalTree(kind string, rules []Rule) ([]byte, error) {
	children := make([]json.RawMessage, 0, len(rules))
	for _, child := range rules {
		data, err := RuleSpec{Rule: child}.MarshalJSON()
		if err != nil {
			return nil, err
		}
		children = append(children, data)
	}
	return json.Marshal(ruleJSON{Kind: kind, Rules: children})
}
