// Copyright (c) 2026 Andrew Aylett All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package rblcheck

import (
	"fmt"
	"net/netip"
	"strings"
)

// Query is a single lookup target: either an IP address or a domain
// name. Construct one with [AddressQuery], [DomainQuery], or
// [ParseQuery]; a Query is immutable once constructed. The zero value
// is not a usable query.
type Query struct {
	addr   netip.Addr
	domain string
}

// AddressQuery returns a Query for an IP address. IPv4-mapped IPv6
// addresses are unmapped so they encode as plain IPv4.
func AddressQuery(addr netip.Addr) Query {
	return Query{addr: addr.Unmap()}
}

// DomainQuery returns a Query for a domain name. The domain is
// normalized (lowercased, trimmed, IDNs converted to their ASCII form)
// and validated; [ErrInvalidDomain] is returned if it does not look
// like a resolvable name.
func DomainQuery(domain string) (Query, error) {
	normalized, err := normalizeDomain(domain)
	if err != nil {
		return Query{}, err
	}
	if !IsValidDomain(normalized) {
		return Query{}, fmt.Errorf("%w: %s", ErrInvalidDomain, domain)
	}
	return Query{domain: normalized}, nil
}

// ParseQuery interprets s as an IP address if possible, and as a domain
// name otherwise.
func ParseQuery(s string) (Query, error) {
	if addr, err := netip.ParseAddr(strings.TrimSpace(s)); err == nil {
		return AddressQuery(addr), nil
	}
	return DomainQuery(s)
}

// IsAddress reports whether q holds an IP address rather than a domain.
func (q Query) IsAddress() bool {
	return q.addr.IsValid()
}

// String renders the target as it was queried: an address in its
// standard notation, a domain as its normalized literal string.
func (q Query) String() string {
	if q.addr.IsValid() {
		return q.addr.String()
	}
	return q.domain
}

const hexDigits = "0123456789abcdef"

// Encode returns the reversed-label query fragment for q, per the DNSBL
// convention (RFC 5782): IPv4 octets in reverse order, IPv6 expanded to
// 32 nibbles in full reverse order, domains passed through without
// reversal. The fragment always ends with a dot so a list zone can be
// appended directly.
func (q Query) Encode() string {
	switch {
	case q.addr.Is4():
		o := q.addr.As4()
		return fmt.Sprintf("%d.%d.%d.%d.", o[3], o[2], o[1], o[0])
	case q.addr.IsValid():
		return reverseNibbles(q.addr.As16())
	default:
		return q.domain + "."
	}
}

// reverseNibbles emits the ip6.arpa-style reverse nibble form: two hex
// digits per octet, low nibble before high, last octet first.
func reverseNibbles(octets [16]byte) string {
	var b strings.Builder
	b.Grow(len(octets) * 4)
	for i := len(octets) - 1; i >= 0; i-- {
		b.WriteByte(hexDigits[octets[i]&0xF])
		b.WriteByte('.')
		b.WriteByte(hexDigits[octets[i]>>4])
		b.WriteByte('.')
	}
	return b.String()
}
