package netguard

import "net/netip"

// Ranges that are routable in theory but never legitimate fetch targets:
// CGNAT, IETF protocol assignments, benchmarking, and class E.
var reservedRanges = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.0.2.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
	netip.MustParsePrefix("198.51.100.0/24"),
	netip.MustParsePrefix("203.0.113.0/24"),
	netip.MustParsePrefix("240.0.0.0/4"),
	netip.MustParsePrefix("2001:db8::/32"),
}

// IsPublicUnicast reports whether an address is safe to fetch from: global
// unicast, not private, not in a reserved range. Loopback, link-local,
// multicast and unspecified addresses all fail the global-unicast test.
func IsPublicUnicast(addr netip.Addr) bool {
	addr = addr.Unmap()
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return false
	}
	for _, p := range reservedRanges {
		if p.Contains(addr) {
			return false
		}
	}
	return true
}
